package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realm-economy/internal/domain/dice"
	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/trade"
)

// StateBuilder assembles valid economy states for tests. The zero builder
// is a minimal healthy economy: d6 production dice, no exports, no costs,
// 1000 gp treasury.
type StateBuilder struct {
	params economy.StateParams
}

// NewStateBuilder creates a builder with minimal valid defaults
func NewStateBuilder() *StateBuilder {
	return &StateBuilder{
		params: economy.StateParams{
			TradeDie:         dice.MustParseDie("d6"),
			AgriDie:          dice.MustParseDie("d6"),
			Exports:          map[string]dice.Die{},
			ExportQuantities: map[string]int{},
			Revenue:          map[string]int{},
			Costs:            map[string]int{},
			Treasury:         1000,
		},
	}
}

// WithTradeDie sets the trade die from a ladder code
func (b *StateBuilder) WithTradeDie(code string) *StateBuilder {
	b.params.TradeDie = dice.MustParseDie(code)
	return b
}

// WithAgriDie sets the agriculture die from a ladder code
func (b *StateBuilder) WithAgriDie(code string) *StateBuilder {
	b.params.AgriDie = dice.MustParseDie(code)
	return b
}

// WithExport adds one exported commodity with its quality die and quantity
func (b *StateBuilder) WithExport(commodity, code string, quantity int) *StateBuilder {
	b.params.Exports[commodity] = dice.MustParseDie(code)
	b.params.ExportQuantities[commodity] = quantity
	return b
}

// WithRevenue sets one flat revenue line item
func (b *StateBuilder) WithRevenue(name string, amount int) *StateBuilder {
	b.params.Revenue[name] = amount
	return b
}

// WithCost sets one fixed cost line item
func (b *StateBuilder) WithCost(name string, amount int) *StateBuilder {
	b.params.Costs[name] = amount
	return b
}

// WithImportPenalties sets the flat import penalty outflow
func (b *StateBuilder) WithImportPenalties(amount int) *StateBuilder {
	b.params.ImportPenalties = amount
	return b
}

// WithUpkeep sets the flat upkeep outflow
func (b *StateBuilder) WithUpkeep(amount int) *StateBuilder {
	b.params.Upkeep = amount
	return b
}

// WithLoyaltyTier sets the loyalty tier, failing the test if out of range
func (b *StateBuilder) WithLoyaltyTier(t *testing.T, tier int) *StateBuilder {
	loyalty, err := economy.NewLoyaltyTier(tier)
	require.NoError(t, err)
	b.params.LoyaltyTier = loyalty
	return b
}

// WithTreasury sets the starting treasury
func (b *StateBuilder) WithTreasury(amount int) *StateBuilder {
	b.params.Treasury = amount
	return b
}

// Params returns the accumulated parameters without building
func (b *StateBuilder) Params() economy.StateParams {
	return b.params
}

// Build constructs the state, failing the test on a validation error
func (b *StateBuilder) Build(t *testing.T) *economy.State {
	state, err := economy.NewState(b.params)
	require.NoError(t, err)
	return state
}

// DefaultNeighbours returns the Ilha Prespur neighbour reference data
func DefaultNeighbours(t *testing.T) *trade.NeighbourSet {
	cormyr, err := trade.NewNeighbour("Cormyr", 4, 1, 5,
		map[string]float64{"fish": 0.5, "timber": 1, "salt": 1})
	require.NoError(t, err)
	sembia, err := trade.NewNeighbour("Sembia", 6, 0, 3,
		map[string]float64{"fish": 0, "timber": 1, "salt": 0})
	require.NoError(t, err)
	pirates, err := trade.NewNeighbour("Pirate Isles", 1, -1, 1,
		map[string]float64{"fish": 0, "timber": 2, "salt": 0})
	require.NoError(t, err)
	return trade.NewNeighbourSet(cormyr, sembia, pirates)
}
