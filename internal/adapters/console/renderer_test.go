package console_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/realm-economy/internal/adapters/console"
	"github.com/andrescamacho/realm-economy/internal/domain/simulation"
)

func sampleReport() *simulation.MonthlyReport {
	return &simulation.MonthlyReport{
		Revenue: simulation.RevenueBreakdown{
			TradeRoll:       4,
			AgriRoll:        3,
			TradeGP:         100,
			AgriGP:          30,
			FlatRevenue:     305,
			ExportGP:        45,
			ForeignGP:       190,
			CostsTotal:      80,
			ImportPenalties: 300,
			Upkeep:          400,
			Tariff:          11,
			Raw:             -110,
			Outflows:        791,
		},
		Costs:         map[string]int{"festival_grant": 75, "bounties": 5},
		Trend:         simulation.TrendSignal{Trend: 0.04},
		Profit:        -114,
		TreasuryAfter: 886,
		Phase:         simulation.PhaseBoom,
		Reason:        "surge in overseas demand",
	}
}

func TestRender_BoomMonth(t *testing.T) {
	var buf bytes.Buffer

	console.NewRenderer(&buf).Render(sampleReport())
	out := buf.String()

	assert.Contains(t, out, "-- Inflows --")
	assert.Contains(t, out, "+100 gp (25 x 4)")
	assert.Contains(t, out, "+30 gp (10 x 3)")
	assert.Contains(t, out, "-- Outflows --")
	assert.Contains(t, out, "festival_grant")
	assert.Contains(t, out, "-11 gp")
	assert.Contains(t, out, "Raw Income  : -110 gp")
	assert.Contains(t, out, "Trend Score : 0.04")
	assert.Contains(t, out, "Net Profit  : -114 gp   -> Treasury 886 gp")
	assert.Contains(t, out, "Boom reason   : Surge in overseas demand")
}

func TestRender_NeutralMonthSkipsReason(t *testing.T) {
	report := sampleReport()
	report.Phase = simulation.PhaseNeutral
	report.Reason = ""
	var buf bytes.Buffer

	console.NewRenderer(&buf).Render(report)

	assert.Contains(t, buf.String(), "No boom or slump this month.")
	assert.NotContains(t, buf.String(), "reason")
}

func TestRender_ZeroExportsLineOmitted(t *testing.T) {
	report := sampleReport()
	report.Revenue.ExportGP = 0
	var buf bytes.Buffer

	console.NewRenderer(&buf).Render(report)

	assert.NotContains(t, buf.String(), "Exports")
}
