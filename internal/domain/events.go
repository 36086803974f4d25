package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTransitionStarted   EventType = "TransitionStarted"
	EventTransitionCompleted EventType = "TransitionCompleted"
	EventFilterApplied       EventType = "FilterApplied"
	EventImageSelected       EventType = "ImageSelected"
	EventPageChanged         EventType = "PageChanged"
	EventSlideshowStarted    EventType = "SlideshowStarted"
	EventSlideshowStopped    EventType = "SlideshowStopped"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TransitionStartedEvent is emitted when the navigator leaves a section
type TransitionStartedEvent struct {
	From int
	To   int
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// TransitionCompletedEvent is emitted when the incoming section finished fading in
type TransitionCompletedEvent struct {
	Section int
}

func (e TransitionCompletedEvent) Type() EventType { return EventTransitionCompleted }

// FilterAppliedEvent is emitted after the filtered image set was recomputed
type FilterAppliedEvent struct {
	Filters Filters
	Matches int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// ImageSelectedEvent is emitted when the main gallery image changes
type ImageSelectedEvent struct {
	Index int
	Name  string
}

func (e ImageSelectedEvent) Type() EventType { return EventImageSelected }

// PageChangedEvent is emitted when the thumbnail page changes
type PageChangedEvent struct {
	Page  int
	Pages int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// SlideshowStartedEvent is emitted when a slideshow timer is armed
type SlideshowStartedEvent struct {
	ID int
}

func (e SlideshowStartedEvent) Type() EventType { return EventSlideshowStarted }

// SlideshowStoppedEvent is emitted when the active slideshow timer is cancelled
type SlideshowStoppedEvent struct {
	ID int
}

func (e SlideshowStoppedEvent) Type() EventType { return EventSlideshowStopped }

// ConfigLoadedEvent is emitted once configuration has been resolved
type ConfigLoadedEvent struct {
	Path string
	Deck string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ErrorEvent is emitted when a recoverable error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
