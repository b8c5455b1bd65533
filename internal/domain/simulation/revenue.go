package simulation

import (
	"math"

	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/shared"
	"github.com/andrescamacho/realm-economy/internal/domain/trade"
)

// RevenueBreakdown holds every inflow and outflow computed for one month.
// The foreign sales and tariff values the engine derives live here, not on
// the economy state, so one month's results never leak into the next
// month's tariff base.
type RevenueBreakdown struct {
	TradeRoll int
	AgriRoll  int

	TradeGP     int
	AgriGP      int
	FlatRevenue int
	ExportGP    int
	ForeignGP   int

	CostsTotal      int
	ImportPenalties int
	Upkeep          int
	Tariff          int

	// Raw is income net of costs, penalties and upkeep. The tariff is
	// deliberately excluded here and accounted only through Outflows;
	// profit scaling works from the pre-tariff figure.
	Raw      int
	Outflows int
}

// computeRevenue rolls the production dice and aggregates the month's
// flows. Draws exactly two values from src: the trade roll then the agri
// roll.
func computeRevenue(state *economy.State, neighbours *trade.NeighbourSet, src shared.RandomSource) RevenueBreakdown {
	b := RevenueBreakdown{
		ImportPenalties: state.ImportPenalties(),
		Upkeep:          state.Upkeep(),
		CostsTotal:      state.CostsTotal(),
	}

	// Base production, re-rolled every month. Only the gp output persists.
	b.TradeRoll = state.TradeDie().Roll(src)
	b.AgriRoll = state.AgriDie().Roll(src)
	b.TradeGP = TradeMultiplier * b.TradeRoll
	b.AgriGP = AgriMultiplier * b.AgriRoll

	// Domestic export sales are flat per unit; die quality matters only to
	// foreign demand and the boom/slump dynamics.
	exports := state.Exports()
	quantities := state.ExportQuantities()
	for commodity := range exports {
		b.ExportGP += quantities[commodity] * trade.GoldPerExportStep
	}

	b.ForeignGP = trade.ForeignSales(exports, neighbours)
	b.FlatRevenue = state.FlatRevenue()

	tariffBase := b.TradeGP + b.AgriGP + state.RevenueTotal() + b.ExportGP + b.ForeignGP
	b.Tariff = int(math.Round(float64(tariffBase) * TariffRate / 100))

	b.Outflows = b.CostsTotal + b.ImportPenalties + b.Upkeep + b.Tariff
	b.Raw = b.TradeGP + b.AgriGP + b.FlatRevenue + b.ExportGP + b.ForeignGP -
		(b.CostsTotal + b.ImportPenalties + b.Upkeep)

	return b
}
