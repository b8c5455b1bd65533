package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func signal(trend float64, avg int) TrendSignal {
	return TrendSignal{Trend: trend, AvgExportSize: avg}
}

func TestClassifyPhase_PrimaryTrendTriggers(t *testing.T) {
	assert.Equal(t, PhaseBoom, classifyPhase(signal(0.035, 6)))
	assert.Equal(t, PhaseBoom, classifyPhase(signal(0.2, 6)))
	assert.Equal(t, PhaseSlump, classifyPhase(signal(-0.035, 6)))
	assert.Equal(t, PhaseSlump, classifyPhase(signal(-0.2, 6)))
	assert.Equal(t, PhaseNeutral, classifyPhase(signal(0.034, 6)))
	assert.Equal(t, PhaseNeutral, classifyPhase(signal(-0.034, 6)))
}

func TestClassifyPhase_FallbackThresholds(t *testing.T) {
	// Trend alone is neutral; the export-size fallback still classifies.
	assert.Equal(t, PhaseBoom, classifyPhase(signal(0, 7)))
	assert.Equal(t, PhaseBoom, classifyPhase(signal(0, 12)))
	assert.Equal(t, PhaseSlump, classifyPhase(signal(0, 5)))
	assert.Equal(t, PhaseSlump, classifyPhase(signal(0, 0)))
	assert.Equal(t, PhaseNeutral, classifyPhase(signal(0, 6)))
}

func TestClassifyPhase_BoomWinsWhenBothPathsFire(t *testing.T) {
	// Primary boom with slump-range export size: one month never applies
	// both mutations, and boom takes precedence.
	assert.Equal(t, PhaseBoom, classifyPhase(signal(0.05, 5)))
	// Primary slump with boom-range export size: the boom fallback is
	// independent of the slump trigger, so boom still wins.
	assert.Equal(t, PhaseBoom, classifyPhase(signal(-0.05, 7)))
}

func TestClassifyPhase_EmptyExportsAlwaysSlumpUnlessTrendBooms(t *testing.T) {
	// avg 0 trips the slump fallback whenever the trend isn't booming
	assert.Equal(t, PhaseSlump, classifyPhase(signal(0, 0)))
	assert.Equal(t, PhaseBoom, classifyPhase(signal(0.05, 0)))
}
