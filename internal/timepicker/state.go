package timepicker

type state int

const (
	stateCollapsed state = iota
	stateExpanded
)

func (s state) String() string {
	switch s {
	case stateCollapsed:
		return "Collapsed"
	case stateExpanded:
		return "Expanded"
	default:
		return "Unknown"
	}
}

func (s state) toggle() state {
	if s == stateExpanded {
		return stateCollapsed
	}
	return stateExpanded
}
