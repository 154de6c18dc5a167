package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

// KeyMapper translates Bubble Tea key messages to player actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "W", "shift+up":
		return core.ActionSwipeUp, false
	case "S", "shift+down":
		return core.ActionSwipeDown, false
	case "A", "shift+left":
		return core.ActionSwipeLeft, false
	case "D", "shift+right":
		return core.ActionSwipeRight, false
	case " ", "enter":
		return core.ActionSelect, false
	case "h", "?":
		return core.ActionHint, false
	case "e":
		return core.ActionRevive, false
	case "r":
		return core.ActionRestart, false
	case "n":
		return core.ActionNext, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// swipeDirection maps a swipe action to a board direction.
func swipeDirection(a core.Action) (match3.Direction, bool) {
	switch a {
	case core.ActionSwipeUp:
		return match3.DirUp, true
	case core.ActionSwipeDown:
		return match3.DirDown, true
	case core.ActionSwipeLeft:
		return match3.DirLeft, true
	case core.ActionSwipeRight:
		return match3.DirRight, true
	}
	return 0, false
}
