package modes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"lifex/internal/ui/input/types"
)

type GotoSectionMode struct {
	TextInputMode
}

func NewGotoSectionMode(ti *textinput.Model) *GotoSectionMode {
	return &GotoSectionMode{
		TextInputMode: NewTextInputMode(types.ModeGotoSection, "goto", "section", ti),
	}
}

func (m *GotoSectionMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.Placeholder = fmt.Sprintf("1-%d", ctx.TotalSections())
	}
	return nil
}
