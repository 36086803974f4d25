package domain

// Section kinds select the entrance animation a section plays
const (
	KindGeneric = "generic"
	KindOpening = "opening"
	KindGallery = "gallery"
	KindRevenue = "revenue"
)

// Direction of travel for section, image and page navigation
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// FilterType names a gallery filter dimension
type FilterType string

const (
	FilterSize      FilterType = "size"
	FilterDirection FilterType = "direction"
)

// FilterAll disables a filter dimension
const FilterAll = "all"

// Filters is the active gallery filter pair
type Filters struct {
	Size      string
	Direction string
}

// PresentationState is the navigator's externally visible state
type PresentationState struct {
	Current   int
	Total     int
	Animating bool
	From      int // outgoing section while Animating, 0 otherwise
}
