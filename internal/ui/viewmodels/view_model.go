package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"lifex/internal/navigator"
	"lifex/internal/scene"
	"lifex/internal/ui/state"
	"lifex/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state          *state.AppState
	navigator      *navigator.Navigator
	scene          *scene.Scene
	deckTitle      string
	gallerySection int

	help             help.Model
	keys             help.KeyMap
	gallery          *views.GalleryFrame
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model. gallerySection is 0 when the deck
// has no gallery.
func NewViewModel(appState *state.AppState, nav *navigator.Navigator, sc *scene.Scene, deckTitle string, gallerySection int) *ViewModel {
	return &ViewModel{
		state:            appState,
		navigator:        nav,
		scene:            sc,
		deckTitle:        deckTitle,
		gallerySection:   gallerySection,
		inputTransformer: NewInputTransformer(textinput.New()),
	}
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetGalleryFrame sets the gallery content for this frame
func (vm *ViewModel) SetGalleryFrame(frame *views.GalleryFrame) {
	vm.gallery = frame
}

// OnGallerySection reports whether the gallery section is current
func (vm *ViewModel) OnGallerySection() bool {
	return vm.gallerySection != 0 && vm.navigator.Current() == vm.gallerySection
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	current, total := vm.navigator.Current(), vm.navigator.Total()
	vs := views.ViewState{
		Width:        vm.state.Width,
		Height:       vm.state.Height,
		DeckTitle:    vm.deckTitle,
		Progress:     fmt.Sprintf("%d / %d", current, total),
		Percent:      float64(current) / float64(total),
		PrevDisabled: vm.navigator.PrevDisabled(),
		NextDisabled: vm.navigator.NextDisabled(),
		HelpModel:    vm.help,
		InputMode:    vm.inputTransformer.GetInputModeString(),
		TextInput:    vm.inputTransformer.GetInputText(),
	}

	for _, n := range vm.scene.Sections() {
		if el, ok := vm.scene.Section(n); ok {
			vs.Sections = append(vs.Sections, el)
		}
	}

	if vm.gallery != nil {
		vs.Gallery = vm.gallery
		vs.GalleryEl, _ = vm.scene.Section(vm.gallerySection)
		vs.Fullscreen = vm.state.Fullscreen && vm.OnGallerySection()
	}

	switch vm.inputTransformer.Mode() {
	case InputModeQuitConfirm:
		vs.Confirm = vm.navigator.BeforeUnload()
	case InputModeNormal:
		vs.StatusMessage = vm.state.StatusMessage
		vs.Keys = vm.keys
	}
	return vs
}
