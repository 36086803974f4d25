package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"lifex/internal/ui/input/types"
)

// ConfirmMode asks before leaving a presentation that is past its first section
type ConfirmMode struct {
	warning string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "quit-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.warning = ctx.BeforeUnload()
	return []types.Action{types.StatusAction{Message: m.warning}}
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.warning = ""
	return []types.Action{types.StatusAction{}}
}

// Warning returns the message shown while confirming
func (m *ConfirmMode) Warning() string {
	return m.warning
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "q":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// swallow everything else so the deck does not move behind the prompt
	return nil, true
}
