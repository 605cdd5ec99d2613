package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eaterai/internal/core"
	"github.com/vovakirdan/eaterai/internal/games/eater"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key on screens without text entry.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "k", "up":
		return core.ActionUp
	case "s", "j", "down":
		return core.ActionDown
	case "a", "h", "left":
		return core.ActionLeft
	case "d", "l", "right":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "esc", "b":
		return core.ActionBack
	case "c":
		return core.ActionConfig
	case "tab":
		return core.ActionScoreboard
	}
	return core.ActionNone
}

// MapTypingKey translates a key while a text field has focus. Printable keys
// belong to the field, so only control keys map to actions.
func (km *KeyMapper) MapTypingKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit
	case "up":
		return core.ActionUp
	case "down":
		return core.ActionDown
	case "enter":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "tab":
		return core.ActionScoreboard
	}
	return core.ActionNone
}

// Direction converts a movement action to a board direction.
func Direction(a core.Action) (eater.Direction, bool) {
	switch a {
	case core.ActionUp:
		return eater.DirUp, true
	case core.ActionDown:
		return eater.DirDown, true
	case core.ActionLeft:
		return eater.DirLeft, true
	case core.ActionRight:
		return eater.DirRight, true
	}
	return 0, false
}
