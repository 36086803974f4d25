package types

import "lifex/internal/gallery"

// Section navigation actions. Key carries the bubbletea key name and is
// resolved to a navigator intent by the model.
type SectionKeyAction struct {
	Key string
}

func (a SectionKeyAction) Type() string { return "section_key" }

type GoToSectionAction struct {
	Section int
}

func (a GoToSectionAction) Type() string { return "goto_section" }

// Gallery actions
type GalleryAction struct {
	Intent gallery.Intent
}

func (a GalleryAction) Type() string { return "gallery" }

// SelectThumbnailAction selects the n-th (1-based) thumbnail of the visible page
type SelectThumbnailAction struct {
	Slot int
}

func (a SelectThumbnailAction) Type() string { return "select_thumbnail" }

// SelectImageNumberAction selects an image by its 1-based number in the filtered set
type SelectImageNumberAction struct {
	Number int
}

func (a SelectImageNumberAction) Type() string { return "select_image_number" }

type ToggleFullscreenAction struct{}

func (a ToggleFullscreenAction) Type() string { return "toggle_fullscreen" }

// Scroll actions
type ScrollAction struct {
	Delta int
}

func (a ScrollAction) Type() string { return "scroll" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Status actions
type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
