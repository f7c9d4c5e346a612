package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionNorthEast        // E key - slide toward the upper-right
	ActionEast             // D key - slide right
	ActionSouthEast        // C key - slide toward the lower-right
	ActionSouthWest        // Z key - slide toward the lower-left
	ActionWest             // A key - slide left
	ActionNorthWest        // Q key - slide toward the upper-left
	ActionUndo             // U key - revert the last move
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Ctrl+C - exit game/session
	ActionPause            // P key - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorthEast:
		return "NorthEast"
	case ActionEast:
		return "East"
	case ActionSouthEast:
		return "SouthEast"
	case ActionSouthWest:
		return "SouthWest"
	case ActionWest:
		return "West"
	case ActionNorthWest:
		return "NorthWest"
	case ActionUndo:
		return "Undo"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// DirectionActions lists the six slide actions in clockwise order,
// matching the board's direction enumeration.
func DirectionActions() [6]Action {
	return [6]Action{
		ActionNorthEast,
		ActionEast,
		ActionSouthEast,
		ActionSouthWest,
		ActionWest,
		ActionNorthWest,
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
