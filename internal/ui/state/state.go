package state

import "lifex/internal/domain"

// View modes of the gallery section
const (
	GalleryViewGrid      = "grid"
	GalleryViewSlideshow = "slideshow"
)

// AppState contains the UI state that is not owned by the navigator or the
// gallery browser
type AppState struct {
	// Layout
	Width  int
	Height int

	// Gallery presentation
	Fullscreen  bool
	GalleryView string // grid or slideshow

	// UI state
	StatusMessage string // status bar message
	PromptText    string // current text of the goto/select prompt
	InPagerMode   bool   // the help pager owns the terminal

	// Frame loop
	Animating bool // a frame tick is scheduled

	// Last event seen on the bus, shown in debug mode
	LastEvent domain.EventType
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		GalleryView: GalleryViewGrid,
	}
}

// SetSlideshow mirrors the slideshow timer into the view toggle
func (s *AppState) SetSlideshow(running bool) {
	if running {
		s.GalleryView = GalleryViewSlideshow
		return
	}
	s.GalleryView = GalleryViewGrid
}

// ToggleFullscreen flips fullscreen and returns the new value
func (s *AppState) ToggleFullscreen() bool {
	s.Fullscreen = !s.Fullscreen
	return s.Fullscreen
}
