package ui

// State is the lifecycle of the form session.
type State int

const (
	StateEditing State = iota
	StateSubmitted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "Editing"
	case StateSubmitted:
		return "Submitted"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}
