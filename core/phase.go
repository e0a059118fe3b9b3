package core

// Phase governs which inputs the session accepts
type Phase uint8

const (
	PhaseConfiguring Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "Configuring"
	case PhaseRunning:
		return "Running"
	case PhaseFinished:
		return "Finished"
	}
	return "Unknown"
}

// CanTransition reports whether from -> to is a legal session transition
func CanTransition(from, to Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseConfiguring: {PhaseRunning},
		PhaseRunning:     {PhaseFinished},
		PhaseFinished:    {PhaseConfiguring},
	}

	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// Outcome is the terminal result of a run, set on entering PhaseFinished
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeScored
	OutcomeOutOfBounds
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeScored:
		return "Scored"
	case OutcomeOutOfBounds:
		return "OutOfBounds"
	}
	return "Unknown"
}
