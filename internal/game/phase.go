package game

// Phase is the round state machine's current mode.
type Phase string

const (
	PhaseIdle             Phase = "idle"              // nothing requested yet
	PhaseLoading          Phase = "loading"           // waiting on the dictionary
	PhaseGeneratingLevel  Phase = "generating_level"  // subword scan in progress
	PhasePreparingVisuals Phase = "preparing_visuals" // waiting for the presentation layer
	PhaseActive           Phase = "active"            // clock running, input accepted
	PhaseRoundOver        Phase = "round_over"        // waiting to restart at level 1
)

func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid.
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseIdle:             {PhaseLoading},
		PhaseLoading:          {PhaseGeneratingLevel},
		PhaseGeneratingLevel:  {PhasePreparingVisuals},
		PhasePreparingVisuals: {PhaseActive},
		PhaseActive:           {PhaseActive, PhaseRoundOver, PhaseGeneratingLevel},
		PhaseRoundOver:        {PhaseGeneratingLevel},
	}

	for _, phase := range validTransitions[p] {
		if phase == target {
			return true
		}
	}
	return false
}

// Ticking reports whether the round clock runs in this phase.
func (p Phase) Ticking() bool {
	return p == PhaseActive
}
