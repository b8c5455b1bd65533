package cli

import (
	"fmt"

	"github.com/andrescamacho/realm-economy/internal/domain/dice"
	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/trade"
	"github.com/andrescamacho/realm-economy/internal/infrastructure/config"
)

// buildState assembles the domain economy state from configuration
func buildState(cfg *config.Config) (*economy.State, error) {
	tradeDie, err := dice.ParseDie(cfg.Economy.TradeDie)
	if err != nil {
		return nil, fmt.Errorf("trade_die: %w", err)
	}
	agriDie, err := dice.ParseDie(cfg.Economy.AgriDie)
	if err != nil {
		return nil, fmt.Errorf("agri_die: %w", err)
	}

	exports := make(map[string]dice.Die, len(cfg.Economy.Exports))
	for commodity, code := range cfg.Economy.Exports {
		d, err := dice.ParseDie(code)
		if err != nil {
			return nil, fmt.Errorf("exports.%s: %w", commodity, err)
		}
		exports[commodity] = d
	}

	loyalty, err := economy.NewLoyaltyTier(cfg.Economy.LoyaltyTier)
	if err != nil {
		return nil, err
	}

	return economy.NewState(economy.StateParams{
		TradeDie:         tradeDie,
		AgriDie:          agriDie,
		Exports:          exports,
		ExportQuantities: cfg.Economy.ExportQuantities,
		Revenue:          cfg.Economy.Revenue,
		Costs:            cfg.Economy.Costs,
		ImportPenalties:  cfg.Economy.ImportPenalties,
		Upkeep:           cfg.Economy.Upkeep,
		LoyaltyTier:      loyalty,
		Treasury:         cfg.Economy.Treasury,
		TotalImportValue: cfg.Economy.TotalImportValue,
	})
}

// buildNeighbourSet assembles the fixed neighbour reference data
func buildNeighbourSet(cfg *config.Config) (*trade.NeighbourSet, error) {
	neighbours := make([]*trade.Neighbour, 0, len(cfg.Neighbours))
	for name, nc := range cfg.Neighbours {
		n, err := trade.NewNeighbour(name, nc.Population, nc.Relationship, nc.Distance, nc.Scarcity)
		if err != nil {
			return nil, err
		}
		neighbours = append(neighbours, n)
	}
	return trade.NewNeighbourSet(neighbours...), nil
}
