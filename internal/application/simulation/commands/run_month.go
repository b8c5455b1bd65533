package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/realm-economy/internal/application/common"
	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/simulation"
)

// RunMonthCommand requests one monthly simulation step
type RunMonthCommand struct {
	State   *economy.State // State to advance, mutated in place
	Verbose bool           // Render the line-by-line report
}

// RunMonthResponse contains the step results
type RunMonthResponse struct {
	Report *simulation.MonthlyReport
}

// RunMonthHandler handles monthly simulation commands
type RunMonthHandler struct {
	simulator *simulation.Simulator
}

// NewRunMonthHandler creates a new handler
func NewRunMonthHandler(simulator *simulation.Simulator) *RunMonthHandler {
	return &RunMonthHandler{simulator: simulator}
}

// Handle executes the command
func (h *RunMonthHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RunMonthCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if cmd.State == nil {
		return nil, fmt.Errorf("state cannot be nil")
	}

	report, err := h.simulator.SimulateMonth(cmd.State, cmd.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate month: %w", err)
	}

	return &RunMonthResponse{Report: report}, nil
}
