package gallery

import "lifex/internal/domain"

// Intent is a gallery request from input or a timer
type Intent interface {
	Type() string
}

// ApplyFilter sets one filter dimension
type ApplyFilter struct {
	Filter domain.FilterType
	Value  string
}

func (ApplyFilter) Type() string { return "apply_filter" }

// CycleFilter moves a filter dimension to its next option
type CycleFilter struct {
	Filter domain.FilterType
}

func (CycleFilter) Type() string { return "cycle_filter" }

// SelectImage selects an index of the filtered set
type SelectImage struct {
	Index int
}

func (SelectImage) Type() string { return "select_image" }

// NavigateImage moves the selection by one
type NavigateImage struct {
	Direction domain.Direction
}

func (NavigateImage) Type() string { return "navigate_image" }

// ChangePage moves the thumbnail page by one
type ChangePage struct {
	Direction domain.Direction
}

func (ChangePage) Type() string { return "change_page" }

// ToggleSlideshow starts a stopped slideshow or stops a running one
type ToggleSlideshow struct{}

func (ToggleSlideshow) Type() string { return "toggle_slideshow" }

// Result reports what an intent did
type Result struct {
	Changed bool
	Timer   *SlideshowTimer // set when a new timer was armed
}

// Dispatch applies an intent to the browser
func (b *Browser) Dispatch(intent Intent) Result {
	switch i := intent.(type) {
	case ApplyFilter:
		return Result{Changed: b.ApplyFilter(i.Filter, i.Value)}
	case CycleFilter:
		return Result{Changed: b.CycleFilter(i.Filter)}
	case SelectImage:
		return Result{Changed: b.SelectImage(i.Index)}
	case NavigateImage:
		return Result{Changed: b.Navigate(i.Direction)}
	case ChangePage:
		return Result{Changed: b.ChangePage(i.Direction)}
	case ToggleSlideshow:
		if _, running := b.Slideshow(); running {
			b.StopSlideshow()
			return Result{Changed: true}
		}
		timer, ok := b.StartSlideshow()
		if !ok {
			return Result{}
		}
		return Result{Changed: true, Timer: &timer}
	default:
		return Result{}
	}
}
