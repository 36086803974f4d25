package scene

import (
	"lifex/internal/tween"
)

// Element is a node of the render tree. The presenter mutates it through
// tween and state setters; views read it back when drawing a frame.
type Element struct {
	ID      string
	Classes []string
	Text    string

	props     map[tween.Property]float64
	active    bool
	disabled  bool
	scrollTop int
	source    string
	children  []*Element
}

// NewElement creates a fully visible element
func NewElement(id string, classes ...string) *Element {
	return &Element{
		ID:      id,
		Classes: classes,
		props: map[tween.Property]float64{
			tween.Opacity: 1,
			tween.Scale:   1,
		},
	}
}

// Get implements tween.Target
func (e *Element) Get(p tween.Property) float64 {
	return e.props[p]
}

// Set implements tween.Target
func (e *Element) Set(p tween.Property, v float64) {
	e.props[p] = v
}

// Opacity returns the current opacity clamped to [0,1]
func (e *Element) Opacity() float64 {
	o := e.props[tween.Opacity]
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

func (e *Element) SetActive(active bool) { e.active = active }
func (e *Element) Active() bool          { return e.active }

func (e *Element) SetDisabled(disabled bool) { e.disabled = disabled }
func (e *Element) Disabled() bool            { return e.disabled }

func (e *Element) SetText(text string) { e.Text = text }

func (e *Element) SetSource(src string) { e.source = src }
func (e *Element) Source() string       { return e.source }

// ScrollToTop resets the scroll offset
func (e *Element) ScrollToTop() { e.scrollTop = 0 }

// ScrollBy moves the scroll offset, never above the top
func (e *Element) ScrollBy(delta int) {
	e.scrollTop += delta
	if e.scrollTop < 0 {
		e.scrollTop = 0
	}
}

func (e *Element) ScrollTop() int { return e.scrollTop }

// HasClass reports whether the element carries class c
func (e *Element) HasClass(c string) bool {
	for _, own := range e.Classes {
		if own == c {
			return true
		}
	}
	return false
}

// Append adds children in order
func (e *Element) Append(children ...*Element) {
	e.children = append(e.children, children...)
}

// Children returns the direct children
func (e *Element) Children() []*Element {
	return e.children
}

// RemoveChildren drops every direct child carrying class c
func (e *Element) RemoveChildren(c string) {
	kept := e.children[:0]
	for _, child := range e.children {
		if !child.HasClass(c) {
			kept = append(kept, child)
		}
	}
	e.children = kept
}

// QueryAll returns descendants carrying any of the classes, in document order
func (e *Element) QueryAll(classes ...string) []*Element {
	var out []*Element
	for _, child := range e.children {
		for _, c := range classes {
			if child.HasClass(c) {
				out = append(out, child)
				break
			}
		}
		out = append(out, child.QueryAll(classes...)...)
	}
	return out
}

// Query returns the first descendant carrying class c
func (e *Element) Query(c string) (*Element, bool) {
	found := e.QueryAll(c)
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}
