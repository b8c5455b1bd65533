package simulation

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/shared"
	"github.com/andrescamacho/realm-economy/internal/domain/trade"
)

// Simulator applies monthly simulation steps to an economy state. It owns
// the entropy source: seed the RandomSource once and every subsequent month
// is reproducible.
type Simulator struct {
	neighbours *trade.NeighbourSet
	src        shared.RandomSource
	clock      shared.Clock
	renderer   Renderer
}

// NewSimulator creates a simulator. A nil src falls back to a source seeded
// from the current time; a nil clock falls back to the system clock; a nil
// renderer disables verbose output.
func NewSimulator(neighbours *trade.NeighbourSet, src shared.RandomSource, clock shared.Clock, renderer Renderer) *Simulator {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if src == nil {
		src = shared.NewSeededSource(time.Now().UnixNano())
	}
	return &Simulator{
		neighbours: neighbours,
		src:        src,
		clock:      clock,
		renderer:   renderer,
	}
}

// SimulateMonth runs one month: validate, aggregate revenue, compute the
// trend, apply profit, then apply the boom/slump transition. The state is
// mutated in place and the same state is usable for the next month.
//
// Validation failures reject the month before any mutation or randomness is
// consumed, so an invalid state is returned to the caller untouched.
func (s *Simulator) SimulateMonth(state *economy.State, verbose bool) (*MonthlyReport, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	breakdown := computeRevenue(state, s.neighbours, s.src)
	signal := computeTrend(state.Exports(), s.src)
	profit := computeProfit(breakdown.Raw, state.LoyaltyTier(), signal.Trend)
	state.ApplyProfit(profit)

	phase := classifyPhase(signal)
	reason := drawReason(phase, s.src)
	switch phase {
	case PhaseBoom:
		state.ApplyBoom()
	case PhaseSlump:
		state.ApplySlump()
	}

	report := &MonthlyReport{
		ID:            uuid.New(),
		GeneratedAt:   s.clock.Now(),
		Revenue:       breakdown,
		Costs:         state.Costs(),
		Trend:         signal,
		Profit:        profit,
		TreasuryAfter: state.Treasury(),
		Phase:         phase,
		Reason:        reason,
	}

	if verbose && s.renderer != nil {
		s.renderer.Render(report)
	}

	return report, nil
}
