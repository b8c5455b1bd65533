package config

// SetDefaults sets default values for all configuration fields.
// The economy and neighbour defaults are the Ilha Prespur campaign setup.
func SetDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	// Economy defaults. Flat gp fields like upkeep cannot distinguish
	// "unset" from an explicit zero, so the whole block is applied only
	// when no economy section was supplied at all.
	if economyUnset(&cfg.Economy) {
		cfg.Economy = EconomyConfig{
			TradeDie: "d6",
			AgriDie:  "d6",
			Exports: map[string]string{
				"fish":   "d4",
				"timber": "d4",
				"salt":   "d0",
				"olives": "d2",
				"wine":   "d2",
				"grain":  "d8",
			},
			ExportQuantities: map[string]int{
				"fish":   2,
				"timber": 2,
				"salt":   0,
				"olives": 1,
				"wine":   1,
				"grain":  3,
			},
			Revenue: map[string]int{
				"luxury_tax":   5,
				"gate_fees":    0,
				"other_income": 300,
			},
			Costs: map[string]int{
				"festival_grant": 75,
				"road_levy":      0,
				"bounties":       5,
			},
			ImportPenalties: 300,
			Upkeep:          400,
			LoyaltyTier:     0,
			Treasury:        1000,
		}
	}

	// Neighbour defaults
	if cfg.Neighbours == nil {
		cfg.Neighbours = map[string]NeighbourConfig{
			"Cormyr": {
				Population:   4,
				Relationship: 1,
				Distance:     5,
				Scarcity:     map[string]float64{"fish": 0.5, "timber": 1, "salt": 1},
			},
			"Sembia": {
				Population:   6,
				Relationship: 0,
				Distance:     3,
				Scarcity:     map[string]float64{"fish": 0, "timber": 1, "salt": 0},
			},
			"Pirate Isles": {
				Population:   1,
				Relationship: -1,
				Distance:     1,
				Scarcity:     map[string]float64{"fish": 0, "timber": 2, "salt": 0},
			},
		}
	}
}

func economyUnset(e *EconomyConfig) bool {
	return e.TradeDie == "" && e.AgriDie == "" && e.Exports == nil &&
		e.ExportQuantities == nil && e.Revenue == nil && e.Costs == nil
}
