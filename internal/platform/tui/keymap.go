package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the given mode.
// Esc pauses while playing and resumes while paused.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, mode dragon.Mode) core.Action {
	switch msg.String() {
	case " ":
		return core.ActionFlap
	case "esc":
		if mode == dragon.ModePaused {
			return core.ActionResume
		}
		return core.ActionPause
	case "p", "P":
		return core.ActionPlay
	case "q", "Q", "ctrl+c":
		return core.ActionQuit
	}

	return core.ActionNone
}

// IsHardQuit reports whether the key should end the program in any mode.
func (km *KeyMapper) IsHardQuit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC
}

// IsScreenshot reports whether the key requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlS
}
