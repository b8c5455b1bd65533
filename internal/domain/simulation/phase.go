package simulation

// Phase classifies one simulated month. It is transient: only its effects
// (die movement) persist on the economy state.
type Phase string

const (
	// PhaseNeutral indicates no boom or slump this month
	PhaseNeutral Phase = "NEUTRAL"

	// PhaseBoom indicates an economic boom: the weakest export and the
	// trade die step up one tier
	PhaseBoom Phase = "BOOM"

	// PhaseSlump indicates an economic slump: the strongest export and the
	// trade die step down one tier
	PhaseSlump Phase = "SLUMP"
)

// classifyPhase applies the boom/slump transition rule. The trend triggers
// are primary; the average-export-size thresholds are independent fallbacks
// checked only when the corresponding primary trigger did not fire. When
// the two paths disagree, boom takes precedence so a single month never
// applies both mutations.
func classifyPhase(signal TrendSignal) Phase {
	boom := signal.Trend >= TrendBoomTrigger
	slump := signal.Trend <= TrendSlumpTrigger

	if !boom && signal.AvgExportSize >= BoomThreshold {
		boom = true
	}
	if !slump && signal.AvgExportSize <= SlumpThreshold {
		slump = true
	}

	switch {
	case boom:
		return PhaseBoom
	case slump:
		return PhaseSlump
	default:
		return PhaseNeutral
	}
}
