package core

// Action represents a semantic driver action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Up arrow, W, K
	ActionDown          // Down arrow, S, J
	ActionLeft          // Left arrow, A, H
	ActionRight         // Right arrow, D, L
	ActionFaster        // + - shorten the step interval
	ActionSlower        // - - lengthen the step interval
	ActionPause         // P
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action requests a direction.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
