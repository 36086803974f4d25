package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"lifex/internal/ui/input/types"
)

type SelectImageMode struct {
	TextInputMode
}

func NewSelectImageMode(ti *textinput.Model) *SelectImageMode {
	return &SelectImageMode{
		TextInputMode: NewTextInputMode(types.ModeSelectImage, "image", "image number", ti),
	}
}
