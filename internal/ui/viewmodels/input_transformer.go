package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeGotoSection
	InputModeSelectImage
	InputModeQuitConfirm
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// Mode returns the current input mode
func (it *InputTransformer) Mode() InputMode {
	return it.mode
}

// GetInputText returns the rendered text input for prompt modes
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeGotoSection, InputModeSelectImage:
		return it.textInput.View()
	default:
		return ""
	}
}

// GetInputModeString returns the prompt label, empty outside prompt modes
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeGotoSection:
		return "Go to section"
	case InputModeSelectImage:
		return "Image number"
	default:
		return ""
	}
}
