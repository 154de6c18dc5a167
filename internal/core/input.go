package core

// Action represents a semantic player action, abstracted from key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // move cursor up
	ActionDown              // move cursor down
	ActionLeft              // move cursor left
	ActionRight             // move cursor right
	ActionSelect            // Space, Enter - tap the cell under the cursor
	ActionSwipeUp           // Shift+arrow - swipe from the cursor
	ActionSwipeDown         // Shift+arrow
	ActionSwipeLeft         // Shift+arrow
	ActionSwipeRight        // Shift+arrow
	ActionHint              // H - highlight a legal move
	ActionRevive            // E - buy extra moves after a loss
	ActionRestart           // R - restart the level
	ActionNext              // N - next level after a win
	ActionBack              // Escape - back to the menu
	ActionQuit              // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionSelect:     "Select",
	ActionSwipeUp:    "SwipeUp",
	ActionSwipeDown:  "SwipeDown",
	ActionSwipeLeft:  "SwipeLeft",
	ActionSwipeRight: "SwipeRight",
	ActionHint:       "Hint",
	ActionRevive:     "Revive",
	ActionRestart:    "Restart",
	ActionNext:       "Next",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "Unknown"
}

// IsSwipe reports whether the action swipes from the cursor.
func (a Action) IsSwipe() bool {
	return a >= ActionSwipeUp && a <= ActionSwipeRight
}

// CursorDelta returns the row and column step for cursor and swipe actions.
func (a Action) CursorDelta() (dr, dc int) {
	switch a {
	case ActionUp, ActionSwipeUp:
		return -1, 0
	case ActionDown, ActionSwipeDown:
		return 1, 0
	case ActionLeft, ActionSwipeLeft:
		return 0, -1
	case ActionRight, ActionSwipeRight:
		return 0, 1
	}
	return 0, 0
}

// InputFrame collects the actions triggered during one UI tick.
// Order matters for a match-3 board, so actions are kept in arrival order.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
