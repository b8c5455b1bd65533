package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/realm-economy/internal/adapters/console"
	"github.com/andrescamacho/realm-economy/internal/application/simulation/commands"
	"github.com/andrescamacho/realm-economy/internal/domain/shared"
	"github.com/andrescamacho/realm-economy/internal/domain/simulation"
	"github.com/andrescamacho/realm-economy/internal/infrastructure/config"
)

// NewSimulateCommand creates the simulate command with subcommands
func NewSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run economy simulation steps",
		Long: `Run the realm economy simulation.

Each step advances the economy by one month: production dice are rolled,
trade with neighbouring powers is settled, a tariff is levied and the
boom/slump transition may adjust the production dice.

Examples:
  realm-economy simulate month
  realm-economy simulate month --seed 42 --verbose`,
	}

	cmd.AddCommand(newSimulateMonthCommand())

	return cmd
}

// newSimulateMonthCommand creates the simulate month subcommand
func newSimulateMonthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Simulate one month of the realm economy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			state, err := buildState(cfg)
			if err != nil {
				return fmt.Errorf("invalid economy configuration: %w", err)
			}
			neighbours, err := buildNeighbourSet(cfg)
			if err != nil {
				return fmt.Errorf("invalid neighbour configuration: %w", err)
			}

			var src shared.RandomSource
			effectiveSeed := seed
			if effectiveSeed == 0 {
				effectiveSeed = cfg.Simulation.Seed
			}
			if effectiveSeed != 0 {
				src = shared.NewSeededSource(effectiveSeed)
			}

			simulator := simulation.NewSimulator(neighbours, src, nil, console.NewRenderer(os.Stdout))
			handler := commands.NewRunMonthHandler(simulator)

			response, err := handler.Handle(context.Background(), &commands.RunMonthCommand{
				State:   state,
				Verbose: verbose || cfg.Simulation.Verbose,
			})
			if err != nil {
				return err
			}

			report := response.(*commands.RunMonthResponse).Report
			fmt.Printf("\nTotal exported this month: %d gp (%d domestic + %d foreign)\n",
				report.TotalExportGP(), report.Revenue.ExportGP, report.Revenue.ForeignGP)
			fmt.Printf("Tariffs collected this month: %d gp\n", report.Revenue.Tariff)

			return nil
		},
	}
}
