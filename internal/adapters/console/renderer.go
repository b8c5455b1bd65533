// Package console renders monthly reports for a human game master.
package console

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/andrescamacho/realm-economy/internal/domain/simulation"
)

// Renderer writes a line-by-line monthly report to an io.Writer
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to the given destination
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render prints the month's inflows, outflows, trend, profit and, on a boom
// or slump month, the narrative reason.
func (r *Renderer) Render(report *simulation.MonthlyReport) {
	rev := report.Revenue

	fmt.Fprintln(r.out, "-- Inflows --")
	w := tabwriter.NewWriter(r.out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "  Trade\t: +%d gp (%d x %d)\n", rev.TradeGP, simulation.TradeMultiplier, rev.TradeRoll)
	fmt.Fprintf(w, "  Agri\t: +%d gp (%d x %d)\n", rev.AgriGP, simulation.AgriMultiplier, rev.AgriRoll)
	fmt.Fprintf(w, "  Flat Rev\t: +%d gp\n", rev.FlatRevenue)
	if rev.ExportGP > 0 {
		fmt.Fprintf(w, "  Exports\t: +%d gp\n", rev.ExportGP)
	}
	fmt.Fprintf(w, "  Foreign\t: +%d gp\n", rev.ForeignGP)
	w.Flush()

	fmt.Fprintln(r.out, "-- Outflows --")
	w = tabwriter.NewWriter(r.out, 0, 0, 1, ' ', 0)
	for _, name := range sortedCostNames(report.Costs) {
		fmt.Fprintf(w, "  %s\t: -%d gp\n", name, report.Costs[name])
	}
	fmt.Fprintf(w, "  Imports\t: -%d gp\n", rev.ImportPenalties)
	fmt.Fprintf(w, "  Upkeep\t: -%d gp\n", rev.Upkeep)
	fmt.Fprintf(w, "  Tariffs\t: -%d gp\n", rev.Tariff)
	w.Flush()

	fmt.Fprintf(r.out, "Raw Income  : %+d gp\n", rev.Raw)
	fmt.Fprintf(r.out, "Trend Score : %.2f (growth+rand)\n", report.Trend.Trend)
	fmt.Fprintf(r.out, "Net Profit  : %+d gp   -> Treasury %d gp\n", report.Profit, report.TreasuryAfter)

	switch report.Phase {
	case simulation.PhaseBoom:
		fmt.Fprintf(r.out, "Boom reason   : %s\n", capitalize(report.Reason))
	case simulation.PhaseSlump:
		fmt.Fprintf(r.out, "Slump reason  : %s\n", capitalize(report.Reason))
	default:
		fmt.Fprintln(r.out, "No boom or slump this month.")
	}
}

func sortedCostNames(costs map[string]int) []string {
	names := make([]string, 0, len(costs))
	for name := range costs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
