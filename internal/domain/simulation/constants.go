package simulation

// Tuning constants for the monthly simulation step.
const (
	// TradeMultiplier converts a trade die roll into gp
	TradeMultiplier = 25

	// AgriMultiplier converts an agriculture die roll into gp
	AgriMultiplier = 10

	// LoyaltyGrowthFactor is the per-tier profit growth from populace loyalty
	LoyaltyGrowthFactor = 0.05

	// TariffRate is the percentage tariff levied on aggregate revenue
	TariffRate = 1

	// BoomThreshold and SlumpThreshold are the average-export-size fallback
	// triggers for boom and slump classification
	BoomThreshold = 7
	SlumpThreshold = 5

	// TrendBoomTrigger and TrendSlumpTrigger are the primary trend-based
	// boom and slump triggers
	TrendBoomTrigger  = 0.035
	TrendSlumpTrigger = -0.035

	// VarianceRange bounds the random trend swing to +/- 10%
	VarianceRange = 0.1

	// EconBias lets a game master tilt the variance (e.g. +0.02 boom-leaning,
	// -0.03 slump-leaning). Neutral by default.
	EconBias = 0.0

	// NeutralExportSize is the average export die size with zero growth effect
	NeutralExportSize = 6

	// GrowthScale divides the export size delta into a growth fraction
	GrowthScale = 20.0

	// GrowthClamp bounds the export-quality growth modifier to +/- 20%
	GrowthClamp = 0.20
)
