package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W
	ActionRestart        // R
	ActionHelp           // ? - toggle the key help footer
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
