package core

// Action is the single logical key-press a host reports for one frame.
// Games work with these intents rather than raw keys.
type Action int

const (
	ActionNone   Action = iota
	ActionFlap          // Space - upward impulse
	ActionPause         // Esc while playing
	ActionResume        // Esc while paused
	ActionPlay          // P - start or restart
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
