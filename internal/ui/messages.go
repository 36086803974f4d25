package ui

import (
	"image"
	"time"

	"lifex/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg advances the tween engine by one frame
type frameMsg time.Time

// slideshowTickMsg is one beat of the slideshow timer with the given ID
type slideshowTickMsg struct {
	id int
}

// previewLoadedMsg carries a decoded and resized main image
type previewLoadedMsg struct {
	key previewKey
	img image.Image
	err error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg is sent before the help pager takes the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg is sent after the help pager returned the terminal
type resumeRenderingMsg struct{}
