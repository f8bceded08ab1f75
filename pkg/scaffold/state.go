package scaffold

// State is the lifecycle position of an Initializer. Transitions only move
// forward: NotStarted, DerivingIdentity, EmittingStep (once per step), then
// Completed or Failed.
type State int

const (
	StateNotStarted State = iota
	StateDerivingIdentity
	StateEmittingStep
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateDerivingIdentity:
		return "deriving-identity"
	case StateEmittingStep:
		return "emitting-step"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}
