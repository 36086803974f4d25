package input

import (
	"lifex/internal/navigator"
	"lifex/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State          *state.AppState
	Navigator      *navigator.Navigator
	GallerySection int // 0 when the deck has no gallery
}

// CurrentSection returns the section on screen
func (c *ModelContext) CurrentSection() int {
	return c.Navigator.Current()
}

// TotalSections returns the deck length
func (c *ModelContext) TotalSections() int {
	return c.Navigator.Total()
}

// OnGallerySection reports whether gallery keys apply. The gallery keys stay
// live during the crossfade into the gallery; only the navigator is guarded.
func (c *ModelContext) OnGallerySection() bool {
	return c.GallerySection != 0 && c.Navigator.Current() == c.GallerySection
}

// Fullscreen reports whether the main image fills the screen. It only
// counts on the gallery section.
func (c *ModelContext) Fullscreen() bool {
	return c.State.Fullscreen && c.OnGallerySection()
}

// BeforeUnload returns the leave warning, if any
func (c *ModelContext) BeforeUnload() string {
	return c.Navigator.BeforeUnload()
}
