package core

// Action represents a semantic game action, abstracted from physical key
// presses and detector gestures. Both input paths resolve to the same set.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow, "left" gesture
	ActionRight           // D, Right arrow, "right" gesture
	ActionSoftDrop        // S, Down arrow, "down" gesture
	ActionRotate          // W, Up arrow, Space, "rotate" gesture
	ActionPause           // P - pause/resume
	ActionRestart         // R - start a new game
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
