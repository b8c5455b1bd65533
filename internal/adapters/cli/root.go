package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	seed       int64
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "realm-economy",
		Short: "Realm Economy CLI - Simulate a small polity's monthly economy",
		Long: `Realm Economy simulates one month of a realm's economy: dice-driven
production, trade with neighbouring powers, and probabilistic boom/slump
swings that reshape the economy's long-term trajectory.

Examples:
  realm-economy simulate month
  realm-economy simulate month --seed 42 --verbose
  realm-economy simulate month --config configs/config.yaml`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (defaults to config.yaml in ., ./configs, /etc/realm-economy)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Random seed; the same seed reproduces the same month (0 = seed from current time)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Print the line-by-line monthly report")

	rootCmd.AddCommand(NewSimulateCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
