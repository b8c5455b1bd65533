package simulation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/shared"
	"github.com/andrescamacho/realm-economy/internal/domain/simulation"
	"github.com/andrescamacho/realm-economy/test/helpers"
)

// fakeRenderer records render calls
type fakeRenderer struct {
	called bool
	last   *simulation.MonthlyReport
}

func (r *fakeRenderer) Render(report *simulation.MonthlyReport) {
	r.called = true
	r.last = report
}

// panicSource fails the test if any randomness is consumed
type panicSource struct{}

func (panicSource) IntN(int) int { panic("randomness consumed") }
func (panicSource) Float64() float64 { panic("randomness consumed") }

func TestSimulateMonth_BaseProduction(t *testing.T) {
	// Trade d6 rolling 4 and agri d6 rolling 3, neutral variance, no
	// exports: raw 130, profit 130.
	state := helpers.NewStateBuilder().Build(t)
	src := &helpers.FixedSource{Ints: []int{3, 2}, Floats: []float64{helpers.NeutralVariance}}
	sim := simulation.NewSimulator(nil, src, nil, nil)

	report, err := sim.SimulateMonth(state, false)

	require.NoError(t, err)
	assert.Equal(t, 100, report.Revenue.TradeGP)
	assert.Equal(t, 30, report.Revenue.AgriGP)
	assert.Equal(t, 130, report.Revenue.Raw)
	assert.Equal(t, 1, report.Revenue.Tariff)
	assert.Equal(t, 130, report.Profit)
	assert.Equal(t, 1130, state.Treasury())
	assert.Equal(t, state.Treasury(), report.TreasuryAfter)

	// No exports means average export size 0, which trips the slump
	// fallback: the trade die steps down and a reason is drawn.
	assert.Equal(t, simulation.PhaseSlump, report.Phase)
	assert.Equal(t, "d4", state.TradeDie().Code())
	assert.NotEmpty(t, report.Reason)
}

func TestSimulateMonth_DeterministicUnderSeed(t *testing.T) {
	build := func() *economy.State {
		return helpers.NewStateBuilder().
			WithExport("fish", "d4", 2).
			WithExport("timber", "d4", 2).
			WithExport("salt", "d0", 0).
			WithRevenue("other_income", 300).
			WithCost("festival_grant", 75).
			WithImportPenalties(300).
			WithUpkeep(400).
			Build(t)
	}

	run := func() (*simulation.MonthlyReport, *economy.State) {
		state := build()
		sim := simulation.NewSimulator(
			helpers.DefaultNeighbours(t),
			shared.NewSeededSource(42),
			shared.NewMockClock(time.Unix(0, 0)),
			nil,
		)
		report, err := sim.SimulateMonth(state, false)
		require.NoError(t, err)
		return report, state
	}

	reportA, stateA := run()
	reportB, stateB := run()

	assert.Equal(t, stateA.Treasury(), stateB.Treasury())
	assert.Equal(t, stateA.TradeDie(), stateB.TradeDie())
	assert.Equal(t, stateA.Exports(), stateB.Exports())
	assert.Equal(t, reportA.Profit, reportB.Profit)
	assert.Equal(t, reportA.Phase, reportB.Phase)
	assert.Equal(t, reportA.Reason, reportB.Reason)
	assert.Equal(t, reportA.Trend, reportB.Trend)
}

func TestSimulateMonth_InvalidStateRejectedBeforeMutationOrRandomness(t *testing.T) {
	state := helpers.NewStateBuilder().WithTreasury(100).Build(t)
	state.ApplyProfit(-500) // previous month's losses, caught now

	tradeBefore := state.TradeDie()
	treasuryBefore := state.Treasury()

	sim := simulation.NewSimulator(nil, panicSource{}, nil, nil)
	report, err := sim.SimulateMonth(state, true)

	require.Error(t, err)
	assert.Nil(t, report)
	var invalid *economy.ErrInvalidState
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, treasuryBefore, state.Treasury())
	assert.Equal(t, tradeBefore, state.TradeDie())
}

func TestSimulateMonth_BoomStepsWeakestExport(t *testing.T) {
	// avg export size 9 guarantees the boom path for any random draw
	state := helpers.NewStateBuilder().
		WithExport("gems", "d10", 0).
		WithExport("silk", "d8", 0).
		Build(t)
	sim := simulation.NewSimulator(nil, shared.NewSeededSource(1), nil, nil)

	report, err := sim.SimulateMonth(state, false)

	require.NoError(t, err)
	assert.Equal(t, simulation.PhaseBoom, report.Phase)
	assert.Equal(t, "d10", state.Exports()["silk"].Code())
	assert.Equal(t, "d10", state.Exports()["gems"].Code())
	assert.Equal(t, "d8", state.TradeDie().Code())
	assert.NotEmpty(t, report.Reason)
}

func TestSimulateMonth_SlumpStepsStrongestExport(t *testing.T) {
	// avg export size 2 forces trend <= -0.1, a guaranteed slump
	state := helpers.NewStateBuilder().
		WithExport("olives", "d2", 0).
		WithExport("wine", "d2", 0).
		Build(t)
	sim := simulation.NewSimulator(nil, shared.NewSeededSource(1), nil, nil)

	report, err := sim.SimulateMonth(state, false)

	require.NoError(t, err)
	assert.Equal(t, simulation.PhaseSlump, report.Phase)
	// Tie on size: sorted name order picks olives
	assert.Equal(t, "d0", state.Exports()["olives"].Code())
	assert.Equal(t, "d2", state.Exports()["wine"].Code())
	assert.Equal(t, "d4", state.TradeDie().Code())
	assert.NotEmpty(t, report.Reason)
}

func TestSimulateMonth_ComputedValuesStayOffTheState(t *testing.T) {
	state := helpers.NewStateBuilder().
		WithExport("fish", "d4", 2).
		WithRevenue("other_income", 300).
		Build(t)
	revenueBefore := state.Revenue()

	sim := simulation.NewSimulator(helpers.DefaultNeighbours(t), shared.NewSeededSource(3), nil, nil)
	report, err := sim.SimulateMonth(state, false)

	require.NoError(t, err)
	assert.Positive(t, report.Revenue.ForeignGP)
	assert.Positive(t, report.Revenue.Tariff)
	// The caller's revenue config is never written by the engine.
	assert.Equal(t, revenueBefore, state.Revenue())
}

func TestSimulateMonth_RendersOnlyWhenVerbose(t *testing.T) {
	renderer := &fakeRenderer{}
	state := helpers.NewStateBuilder().Build(t)
	sim := simulation.NewSimulator(nil, shared.NewSeededSource(1), nil, renderer)

	_, err := sim.SimulateMonth(state, false)
	require.NoError(t, err)
	assert.False(t, renderer.called)

	report, err := sim.SimulateMonth(state, true)
	require.NoError(t, err)
	assert.True(t, renderer.called)
	assert.Equal(t, report, renderer.last)
}

func TestSimulateMonth_ReportMetadata(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	state := helpers.NewStateBuilder().Build(t)
	sim := simulation.NewSimulator(nil, shared.NewSeededSource(1), clock, nil)

	report, err := sim.SimulateMonth(state, false)

	require.NoError(t, err)
	assert.NotEqual(t, report.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, clock.CurrentTime, report.GeneratedAt)
}
