package economy

import (
	"sort"

	"github.com/andrescamacho/realm-economy/internal/domain/dice"
)

// Named revenue line items with a special role in profit calculation.
// Any other line item still counts toward the tariff base.
const (
	RevenueOtherIncome = "other_income"
	RevenueLuxuryTax   = "luxury_tax"
	RevenueGateFees    = "gate_fees"
)

// StateParams carries the caller-supplied initial configuration for a State
type StateParams struct {
	TradeDie         dice.Die
	AgriDie          dice.Die
	Exports          map[string]dice.Die
	ExportQuantities map[string]int
	Revenue          map[string]int
	Costs            map[string]int
	ImportPenalties  int
	Upkeep           int
	LoyaltyTier      LoyaltyTier
	Treasury         int
	TotalImportValue int
}

// State is the aggregate root for one realm's economy. It is mutated in
// place by the monthly simulation step and lives as long as the calling
// session. The revenue and cost line items are caller configuration and
// are never written by the engine; per-step computed values (foreign
// sales, tariff) live on the MonthlyReport instead.
type State struct {
	tradeDie         dice.Die
	agriDie          dice.Die
	exports          map[string]dice.Die
	exportQuantities map[string]int
	revenue          map[string]int
	costs            map[string]int
	importPenalties  int
	upkeep           int
	loyaltyTier      LoyaltyTier
	treasury         int
	totalImportValue int
}

// NewState creates a validated economy state from caller configuration.
// Maps are copied so later caller mutation cannot corrupt the aggregate.
func NewState(params StateParams) (*State, error) {
	s := &State{
		tradeDie:         params.TradeDie,
		agriDie:          params.AgriDie,
		exports:          copyDieMap(params.Exports),
		exportQuantities: copyIntMap(params.ExportQuantities),
		revenue:          copyIntMap(params.Revenue),
		costs:            copyIntMap(params.Costs),
		importPenalties:  params.ImportPenalties,
		upkeep:           params.Upkeep,
		loyaltyTier:      params.LoyaltyTier,
		treasury:         params.Treasury,
		totalImportValue: params.TotalImportValue,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks every state invariant. It runs at construction and again
// at the start of every simulation step: a step may push the treasury
// negative, which is only surfaced on the next step's entry.
func (s *State) Validate() error {
	if s.tradeDie.IsZero() {
		return &ErrInvalidState{Field: "trade_die", Reason: "not a ladder member"}
	}
	if s.agriDie.IsZero() {
		return &ErrInvalidState{Field: "agri_die", Reason: "not a ladder member"}
	}
	for name, d := range s.exports {
		if d.IsZero() {
			return &ErrInvalidState{Field: "exports." + name, Reason: "not a ladder member"}
		}
	}
	for name, qty := range s.exportQuantities {
		if qty < 0 {
			return &ErrInvalidState{Field: "export_quantities." + name, Reason: "must be non-negative"}
		}
	}
	for name, value := range s.revenue {
		if value < 0 {
			return &ErrInvalidState{Field: "revenue." + name, Reason: "must be non-negative"}
		}
	}
	for name, value := range s.costs {
		if value < 0 {
			return &ErrInvalidState{Field: "costs." + name, Reason: "must be non-negative"}
		}
	}
	if s.importPenalties < 0 {
		return &ErrInvalidState{Field: "import_penalties", Reason: "must be non-negative"}
	}
	if s.upkeep < 0 {
		return &ErrInvalidState{Field: "upkeep", Reason: "must be non-negative"}
	}
	if _, err := NewLoyaltyTier(s.loyaltyTier.Int()); err != nil {
		return &ErrInvalidState{Field: "loyalty_tier", Reason: err.Error()}
	}
	if s.treasury < 0 {
		return &ErrInvalidState{Field: "treasury", Reason: "must be non-negative"}
	}
	if s.totalImportValue < 0 {
		return &ErrInvalidState{Field: "total_import_value", Reason: "must be non-negative"}
	}
	return nil
}

// Getters

// TradeDie returns the current trade production die
func (s *State) TradeDie() dice.Die {
	return s.tradeDie
}

// AgriDie returns the current agricultural production die
func (s *State) AgriDie() dice.Die {
	return s.agriDie
}

// Exports returns a copy of the commodity export quality map
func (s *State) Exports() map[string]dice.Die {
	return copyDieMap(s.exports)
}

// ExportQuantities returns a copy of the domestic export quantity map
func (s *State) ExportQuantities() map[string]int {
	return copyIntMap(s.exportQuantities)
}

// Revenue returns a copy of the caller-supplied revenue line items
func (s *State) Revenue() map[string]int {
	return copyIntMap(s.revenue)
}

// Costs returns a copy of the fixed cost line items
func (s *State) Costs() map[string]int {
	return copyIntMap(s.costs)
}

// ImportPenalties returns the flat monthly import penalty outflow
func (s *State) ImportPenalties() int {
	return s.importPenalties
}

// Upkeep returns the flat monthly upkeep outflow
func (s *State) Upkeep() int {
	return s.upkeep
}

// LoyaltyTier returns the populace loyalty tier
func (s *State) LoyaltyTier() LoyaltyTier {
	return s.loyaltyTier
}

// Treasury returns the cumulative running balance
func (s *State) Treasury() int {
	return s.treasury
}

// TotalImportValue returns the tracked import value.
// Reserved for a future tariff refinement; validated but otherwise unused.
func (s *State) TotalImportValue() int {
	return s.totalImportValue
}

// Derived totals

// FlatRevenue sums the three named flat revenue line items, treating
// missing keys as zero.
func (s *State) FlatRevenue() int {
	return s.revenue[RevenueOtherIncome] + s.revenue[RevenueLuxuryTax] + s.revenue[RevenueGateFees]
}

// RevenueTotal sums every caller-supplied revenue line item
func (s *State) RevenueTotal() int {
	total := 0
	for _, v := range s.revenue {
		total += v
	}
	return total
}

// CostsTotal sums every fixed cost line item
func (s *State) CostsTotal() int {
	total := 0
	for _, v := range s.costs {
		total += v
	}
	return total
}

// ExportCommodities returns the exported commodity names in sorted order.
// Sorted iteration keeps every draw and tie-break deterministic under a
// seeded random source.
func (s *State) ExportCommodities() []string {
	names := make([]string, 0, len(s.exports))
	for name := range s.exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mutations (applied by the simulation step)

// ApplyProfit adds the month's net profit to the treasury. Profit may be
// negative and the treasury may dip below zero; the dip is rejected at the
// next step's validation, not here.
func (s *State) ApplyProfit(profit int) {
	s.treasury += profit
}

// ApplyBoom steps the weakest export commodity and the trade die up one
// tier. With no exports only the trade die moves.
func (s *State) ApplyBoom() {
	if name, ok := s.weakestExport(); ok {
		s.exports[name] = s.exports[name].StepUp()
	}
	s.tradeDie = s.tradeDie.StepUp()
}

// ApplySlump steps the strongest export commodity and the trade die down
// one tier. With no exports only the trade die moves.
func (s *State) ApplySlump() {
	if name, ok := s.strongestExport(); ok {
		s.exports[name] = s.exports[name].StepDown()
	}
	s.tradeDie = s.tradeDie.StepDown()
}

// weakestExport returns the commodity with the smallest die, ties broken
// by sorted name order.
func (s *State) weakestExport() (string, bool) {
	best := ""
	for _, name := range s.ExportCommodities() {
		if best == "" || s.exports[name].Size() < s.exports[best].Size() {
			best = name
		}
	}
	return best, best != ""
}

// strongestExport returns the commodity with the largest die, ties broken
// by sorted name order.
func (s *State) strongestExport() (string, bool) {
	best := ""
	for _, name := range s.ExportCommodities() {
		if best == "" || s.exports[name].Size() > s.exports[best].Size() {
			best = name
		}
	}
	return best, best != ""
}

func copyDieMap(m map[string]dice.Die) map[string]dice.Die {
	out := make(map[string]dice.Die, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
