package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/realm-economy/internal/domain/dice"
	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/shared"
	"github.com/andrescamacho/realm-economy/internal/domain/simulation"
	"github.com/andrescamacho/realm-economy/internal/domain/trade"
)

type simulationContext struct {
	params       economy.StateParams
	overdraw     int
	state        *economy.State
	report       *simulation.MonthlyReport
	simErr       error
	secondState  *economy.State
	secondReport *simulation.MonthlyReport
}

func (sc *simulationContext) reset() {
	sc.params = economy.StateParams{
		Exports:          map[string]dice.Die{},
		ExportQuantities: map[string]int{},
		Revenue:          map[string]int{},
		Costs:            map[string]int{},
		Treasury:         1000,
	}
	sc.overdraw = 0
	sc.state = nil
	sc.report = nil
	sc.simErr = nil
	sc.secondState = nil
	sc.secondReport = nil
}

func prespurNeighbours() (*trade.NeighbourSet, error) {
	cormyr, err := trade.NewNeighbour("Cormyr", 4, 1, 5,
		map[string]float64{"fish": 0.5, "timber": 1, "salt": 1})
	if err != nil {
		return nil, err
	}
	sembia, err := trade.NewNeighbour("Sembia", 6, 0, 3,
		map[string]float64{"fish": 0, "timber": 1, "salt": 0})
	if err != nil {
		return nil, err
	}
	pirates, err := trade.NewNeighbour("Pirate Isles", 1, -1, 1,
		map[string]float64{"fish": 0, "timber": 2, "salt": 0})
	if err != nil {
		return nil, err
	}
	return trade.NewNeighbourSet(cormyr, sembia, pirates), nil
}

// Given steps

func (sc *simulationContext) anEconomyWithTradeDieAndAgriDie(tradeCode, agriCode string) error {
	tradeDie, err := dice.ParseDie(tradeCode)
	if err != nil {
		return err
	}
	agriDie, err := dice.ParseDie(agriCode)
	if err != nil {
		return err
	}
	sc.params.TradeDie = tradeDie
	sc.params.AgriDie = agriDie
	return nil
}

func (sc *simulationContext) theCommodityIsExportedWithDie(commodity, code string) error {
	die, err := dice.ParseDie(code)
	if err != nil {
		return err
	}
	sc.params.Exports[commodity] = die
	sc.params.ExportQuantities[commodity] = 1
	return nil
}

func (sc *simulationContext) theTreasuryIsOverdrawnByGp(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("overdraw must be positive, got %d", amount)
	}
	sc.overdraw = amount
	return nil
}

// When steps

func (sc *simulationContext) buildState() (*economy.State, error) {
	state, err := economy.NewState(sc.params)
	if err != nil {
		return nil, err
	}
	if sc.overdraw > 0 {
		state.ApplyProfit(-(sc.params.Treasury + sc.overdraw))
	}
	return state, nil
}

func (sc *simulationContext) simulate(seed int) (*simulation.MonthlyReport, *economy.State, error) {
	state, err := sc.buildState()
	if err != nil {
		return nil, nil, err
	}
	neighbours, err := prespurNeighbours()
	if err != nil {
		return nil, nil, err
	}
	sim := simulation.NewSimulator(neighbours, shared.NewSeededSource(int64(seed)), nil, nil)
	report, err := sim.SimulateMonth(state, false)
	return report, state, err
}

func (sc *simulationContext) oneMonthIsSimulatedWithSeed(seed int) error {
	report, state, err := sc.simulate(seed)
	if state == nil {
		return err
	}
	sc.state = state
	sc.report = report
	sc.simErr = err
	return nil
}

func (sc *simulationContext) oneMonthIsSimulatedTwiceFromIdenticalStatesWithSeed(seed int) error {
	reportA, stateA, err := sc.simulate(seed)
	if err != nil {
		return err
	}
	reportB, stateB, err := sc.simulate(seed)
	if err != nil {
		return err
	}
	sc.report, sc.state = reportA, stateA
	sc.secondReport, sc.secondState = reportB, stateB
	return nil
}

// Then steps

func (sc *simulationContext) theMonthIsClassifiedAs(phase string) error {
	if sc.simErr != nil {
		return fmt.Errorf("simulation failed: %v", sc.simErr)
	}
	if string(sc.report.Phase) != phase {
		return fmt.Errorf("expected phase %s, got %s", phase, sc.report.Phase)
	}
	return nil
}

func (sc *simulationContext) theTradeDieIs(code string) error {
	if got := sc.state.TradeDie().Code(); got != code {
		return fmt.Errorf("expected trade die %s, got %s", code, got)
	}
	return nil
}

func (sc *simulationContext) theExportDieForIs(commodity, code string) error {
	die, ok := sc.state.Exports()[commodity]
	if !ok {
		return fmt.Errorf("commodity %s is not exported", commodity)
	}
	if die.Code() != code {
		return fmt.Errorf("expected %s export die %s, got %s", commodity, code, die.Code())
	}
	return nil
}

func (sc *simulationContext) aNarrativeReasonIsReported() error {
	if sc.report.Reason == "" {
		return fmt.Errorf("expected a reason on the report, got none")
	}
	return nil
}

func (sc *simulationContext) bothRunsReportTheSameTreasuryDiceAndReason() error {
	if sc.state.Treasury() != sc.secondState.Treasury() {
		return fmt.Errorf("treasuries differ: %d vs %d", sc.state.Treasury(), sc.secondState.Treasury())
	}
	if sc.state.TradeDie() != sc.secondState.TradeDie() {
		return fmt.Errorf("trade dice differ: %s vs %s", sc.state.TradeDie().Code(), sc.secondState.TradeDie().Code())
	}
	for commodity, die := range sc.state.Exports() {
		other := sc.secondState.Exports()[commodity]
		if die != other {
			return fmt.Errorf("%s export dice differ: %s vs %s", commodity, die.Code(), other.Code())
		}
	}
	if sc.report.Reason != sc.secondReport.Reason {
		return fmt.Errorf("reasons differ: %q vs %q", sc.report.Reason, sc.secondReport.Reason)
	}
	return nil
}

func (sc *simulationContext) theSimulationFailsValidation() error {
	if sc.simErr == nil {
		return fmt.Errorf("expected the simulation to fail, but it succeeded")
	}
	var invalid *economy.ErrInvalidState
	if !errors.As(sc.simErr, &invalid) {
		return fmt.Errorf("expected a state validation error, got: %v", sc.simErr)
	}
	return nil
}

func InitializeSimulationScenario(ctx *godog.ScenarioContext) {
	sc := &simulationContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an economy with trade die "([^"]*)" and agri die "([^"]*)"$`, sc.anEconomyWithTradeDieAndAgriDie)
	ctx.Step(`^the commodity "([^"]*)" is exported with die "([^"]*)"$`, sc.theCommodityIsExportedWithDie)
	ctx.Step(`^the treasury is overdrawn by (\d+) gp$`, sc.theTreasuryIsOverdrawnByGp)

	// When steps
	ctx.Step(`^one month is simulated with seed (\d+)$`, sc.oneMonthIsSimulatedWithSeed)
	ctx.Step(`^one month is simulated twice from identical states with seed (\d+)$`, sc.oneMonthIsSimulatedTwiceFromIdenticalStatesWithSeed)

	// Then steps
	ctx.Step(`^the month is classified as "([^"]*)"$`, sc.theMonthIsClassifiedAs)
	ctx.Step(`^the trade die is "([^"]*)"$`, sc.theTradeDieIs)
	ctx.Step(`^the export die for "([^"]*)" is "([^"]*)"$`, sc.theExportDieForIs)
	ctx.Step(`^a narrative reason is reported$`, sc.aNarrativeReasonIsReported)
	ctx.Step(`^both runs report the same treasury, dice and reason$`, sc.bothRunsReportTheSameTreasuryDiceAndReason)
	ctx.Step(`^the simulation fails validation$`, sc.theSimulationFailsValidation)
}
