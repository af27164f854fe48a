package search

// Status is the lifecycle state of a Search. Transitions are guarded by the
// search's status lock; only the listed transitions are legal:
//
//	IDLE -> INITIALIZING -> RUNNING -> TERMINATING -> IDLE
//	INITIALIZING -> TERMINATING   (early stop, before the step loop starts)
//	IDLE -> DISPOSED
//
// A DISPOSED search never transitions again.
type Status int

const (
	Idle Status = iota
	Initializing
	Running
	Terminating
	Disposed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Initializing:
		return "INITIALIZING"
	case Running:
		return "RUNNING"
	case Terminating:
		return "TERMINATING"
	case Disposed:
		return "DISPOSED"
	default:
		return "UNKNOWN"
	}
}

// transitionAllowed reports whether moving from 'from' to 'to' is one of the
// FSM's legal edges.
func transitionAllowed(from, to Status) bool {
	switch from {
	case Idle:
		return to == Initializing || to == Disposed
	case Initializing:
		return to == Running || to == Terminating
	case Running:
		return to == Terminating
	case Terminating:
		return to == Idle
	default: // Disposed
		return false
	}
}
