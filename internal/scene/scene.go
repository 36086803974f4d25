package scene

import (
	"sort"

	"lifex/internal/tween"
)

// Well-known element IDs
const (
	IDButtonPrev      = "btn-prev"
	IDButtonNext      = "btn-next"
	IDProgress        = "progress"
	IDGalleryMain     = "gallery-main-image"
	IDGalleryThumbs   = "gallery-thumbnails"
	IDPaginationPrev  = "pagination-prev"
	IDPaginationNext  = "pagination-next"
	ClassSection      = "section"
	ClassGalleryThumb = "gallery-thumbnail"
)

// Scene is the render tree: numbered section containers plus an ID index
// over every registered element.
type Scene struct {
	sections map[int]*Element
	byID     map[string]*Element
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		sections: make(map[int]*Element),
		byID:     make(map[string]*Element),
	}
}

// AddSection registers a section container under its 1-based number.
// Sections start hidden until the navigator shows them.
func (s *Scene) AddSection(n int, el *Element) {
	el.active = false
	el.Set(tween.Opacity, 0)
	s.sections[n] = el
	s.index(el)
}

// Section looks up a section container by number
func (s *Scene) Section(n int) (*Element, bool) {
	el, ok := s.sections[n]
	return el, ok
}

// Sections returns the registered section numbers in ascending order
func (s *Scene) Sections() []int {
	nums := make([]int, 0, len(s.sections))
	for n := range s.sections {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Register indexes a free-standing element (controls outside sections)
func (s *Scene) Register(el *Element) {
	s.index(el)
}

// ByID looks up an element by ID
func (s *Scene) ByID(id string) (*Element, bool) {
	el, ok := s.byID[id]
	return el, ok
}

func (s *Scene) index(el *Element) {
	if el.ID != "" {
		s.byID[el.ID] = el
	}
	for _, child := range el.children {
		s.index(child)
	}
}
