package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"lifex/internal/domain"
	"lifex/internal/gallery"
	"lifex/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()

	if ctx.Fullscreen() {
		if actions, ok := m.fullscreenKey(key); ok {
			return actions, true
		}
	}

	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "q":
		// leaving mid-deck asks first
		if ctx.BeforeUnload() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuitConfirm}}, true
		}
		return []types.Action{types.QuitAction{}}, true

	case "right", " ", "left", "home", "end":
		return []types.Action{types.SectionKeyAction{Key: key}}, true

	case "up", "k":
		return []types.Action{types.ScrollAction{Delta: -1}}, true

	case "down", "j":
		return []types.Action{types.ScrollAction{Delta: 1}}, true

	case "pgup":
		return []types.Action{types.ScrollAction{Delta: -10}}, true

	case "pgdown":
		return []types.Action{types.ScrollAction{Delta: 10}}, true

	case "g":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGotoSection}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	if ctx.OnGallerySection() {
		return m.galleryKey(key)
	}
	return nil, false
}

func (m *NormalMode) galleryKey(key string) ([]types.Action, bool) {
	var intent gallery.Intent
	switch key {
	case "[":
		intent = gallery.NavigateImage{Direction: domain.DirectionPrev}
	case "]":
		intent = gallery.NavigateImage{Direction: domain.DirectionNext}
	case "{":
		intent = gallery.ChangePage{Direction: domain.DirectionPrev}
	case "}":
		intent = gallery.ChangePage{Direction: domain.DirectionNext}
	case "z":
		intent = gallery.CycleFilter{Filter: domain.FilterSize}
	case "x":
		intent = gallery.CycleFilter{Filter: domain.FilterDirection}
	case "s":
		intent = gallery.ToggleSlideshow{}
	case "f":
		return []types.Action{types.ToggleFullscreenAction{}}, true
	case "#":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSelectImage}}, true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return []types.Action{types.SelectThumbnailAction{Slot: int(key[0] - '0')}}, true
	default:
		return nil, false
	}
	return []types.Action{types.GalleryAction{Intent: intent}}, true
}

// fullscreenKey handles the keys that behave differently while the main
// image fills the screen
func (m *NormalMode) fullscreenKey(key string) ([]types.Action, bool) {
	switch key {
	case "esc", "f":
		return []types.Action{types.ToggleFullscreenAction{}}, true
	case "left":
		return []types.Action{types.GalleryAction{Intent: gallery.NavigateImage{Direction: domain.DirectionPrev}}}, true
	case "right", " ":
		return []types.Action{types.GalleryAction{Intent: gallery.NavigateImage{Direction: domain.DirectionNext}}}, true
	}
	return nil, false
}
