package config

// EconomyConfig holds the initial economy state supplied by the caller.
// Die fields carry ladder codes ("d0" through "d12"); all gp amounts are
// non-negative integers.
type EconomyConfig struct {
	// Production dice
	TradeDie string `mapstructure:"trade_die" validate:"required,die_code"`
	AgriDie  string `mapstructure:"agri_die" validate:"required,die_code"`

	// Export quality per commodity (die codes)
	Exports map[string]string `mapstructure:"exports" validate:"dive,die_code"`

	// Units of each commodity sold domestically per month
	ExportQuantities map[string]int `mapstructure:"export_quantities" validate:"dive,min=0"`

	// Flat revenue line items (e.g. luxury_tax, gate_fees, other_income)
	Revenue map[string]int `mapstructure:"revenue" validate:"dive,min=0"`

	// Fixed cost line items
	Costs map[string]int `mapstructure:"costs" validate:"dive,min=0"`

	ImportPenalties  int `mapstructure:"import_penalties" validate:"min=0"`
	Upkeep           int `mapstructure:"upkeep" validate:"min=0"`
	LoyaltyTier      int `mapstructure:"loyalty_tier" validate:"min=0,max=5"`
	Treasury         int `mapstructure:"treasury" validate:"min=0"`
	TotalImportValue int `mapstructure:"total_import_value" validate:"min=0"`
}

// NeighbourConfig describes one neighbouring power's trade profile
type NeighbourConfig struct {
	Population   int `mapstructure:"population" validate:"min=0"`
	Relationship int `mapstructure:"relationship"`
	Distance     int `mapstructure:"distance" validate:"min=1"`

	// Scarcity per commodity: 0 = abundant, higher = scarcer = more demand.
	// Fractional values are allowed.
	Scarcity map[string]float64 `mapstructure:"scarcity" validate:"dive,min=0"`
}
