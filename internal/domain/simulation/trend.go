package simulation

import (
	"math"

	"github.com/andrescamacho/realm-economy/internal/domain/dice"
	"github.com/andrescamacho/realm-economy/internal/domain/economy"
	"github.com/andrescamacho/realm-economy/internal/domain/shared"
	"github.com/andrescamacho/realm-economy/pkg/utils"
)

// TrendSignal is the month's growth/variance signal. It scales net profit
// and drives the boom/slump classification.
type TrendSignal struct {
	AvgExportSize  int
	GrowthModifier float64
	Variance       float64
	Trend          float64
}

// averageExportSize returns the mean export die size rounded to the nearest
// integer, 0 when there are no exports.
func averageExportSize(exports map[string]dice.Die) int {
	if len(exports) == 0 {
		return 0
	}
	total := 0
	for _, d := range exports {
		total += d.Size()
	}
	return int(math.Round(float64(total) / float64(len(exports))))
}

// growthModifier converts export quality into a bounded growth fraction
func growthModifier(avgExportSize int) float64 {
	raw := float64(avgExportSize-NeutralExportSize) / GrowthScale
	return utils.Clamp(raw, -GrowthClamp, GrowthClamp)
}

// computeTrend derives the month's trend signal. Draws exactly one value
// from src for the variance term.
func computeTrend(exports map[string]dice.Die, src shared.RandomSource) TrendSignal {
	avg := averageExportSize(exports)
	variance := -VarianceRange + 2*VarianceRange*src.Float64() + EconBias
	growth := growthModifier(avg)
	return TrendSignal{
		AvgExportSize:  avg,
		GrowthModifier: growth,
		Variance:       variance,
		Trend:          growth + variance,
	}
}

// computeProfit scales raw income by loyalty growth and the trend signal,
// rounding to the nearest gp. May be negative.
func computeProfit(raw int, loyalty economy.LoyaltyTier, trend float64) int {
	multiplier := 1 + LoyaltyGrowthFactor*float64(loyalty.Int()) + trend
	return int(math.Round(float64(raw) * multiplier))
}
