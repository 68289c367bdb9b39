package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h, a - move cursor left
	ActionRight          // Right arrow, l, d - move cursor right
	ActionUp             // Up arrow, k, w - next color
	ActionDown           // Down arrow, j, s - previous color
	ActionConfirm        // Enter, Space - submit / resume / hide the code
	ActionReveal         // v - show or hide the secret (long confirm)
	ActionPause          // Esc, p - pause, or leave when already paused (short cancel)
	ActionRestart        // r - start a new game
	ActionQuit           // q, Ctrl+C - exit (long cancel)
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionReveal:
		return "Reveal"
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

// InputFrame holds the actions triggered during one platform tick, in the
// order they arrived. Order matters for turn-based games: "up, right, up"
// paints two different slots.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}
