package navigator

import "lifex/internal/domain"

// Intent is a navigation request from input
type Intent interface {
	Type() string
}

// NavigateNext advances one section
type NavigateNext struct{}

func (NavigateNext) Type() string { return "navigate_next" }

// NavigatePrev goes back one section
type NavigatePrev struct{}

func (NavigatePrev) Type() string { return "navigate_prev" }

// GoTo jumps to a section number
type GoTo struct {
	Section int
}

func (GoTo) Type() string { return "goto" }

// Dispatch applies an intent and reports whether a transition started
func (n *Navigator) Dispatch(intent Intent) bool {
	switch i := intent.(type) {
	case NavigateNext:
		return n.Navigate(domain.DirectionNext)
	case NavigatePrev:
		return n.Navigate(domain.DirectionPrev)
	case GoTo:
		return n.GoTo(i.Section)
	default:
		return false
	}
}

// KeyIntent maps the presentation shortcut keys to intents. Keys use the
// bubbletea names ("right", " ", "left", "home", "end").
func (n *Navigator) KeyIntent(key string) (Intent, bool) {
	switch key {
	case "right", " ", "space":
		return NavigateNext{}, true
	case "left":
		return NavigatePrev{}, true
	case "home":
		return GoTo{Section: 1}, true
	case "end":
		return GoTo{Section: n.total}, true
	}
	return nil, false
}
