package gallery

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"lifex/internal/domain"
	"lifex/internal/tween"
)

// Gallery feature levels
const (
	ModeFull   = "full"
	ModeSimple = "simple"
)

// Defaults for the full gallery
const (
	DefaultPerPage           = 18
	DefaultSlideshowInterval = 3 * time.Second
	SimpleGridSize           = 12
)

const (
	mainFadeOut = 200 * time.Millisecond
	mainFadeIn  = 300 * time.Millisecond
)

// MainImage is the large image the gallery cross-fades
type MainImage interface {
	tween.Target
	SetSource(src string)
}

// Publisher receives gallery events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Features toggles what the browser accepts
type Features struct {
	Filtering  bool
	Pagination bool
	Slideshow  bool
}

// Options configures a Browser
type Options struct {
	Images            []string
	BasePath          string
	PerPage           int
	Mode              string
	SlideshowInterval time.Duration
	Animator          tween.Animator // optional
	Main              MainImage      // optional
	Publisher         Publisher      // optional
	Logger            *zap.Logger
}

// SlideshowTimer identifies one armed slideshow. Ticks carrying another ID
// are stale and ignored.
type SlideshowTimer struct {
	ID       int
	Interval time.Duration
}

// Browser is a filtered, paginated view over a static image list
type Browser struct {
	all      []string
	filtered []string
	filters  domain.Filters
	page     int
	index    int
	perPage  int
	basePath string
	mode     string
	features Features

	timer       SlideshowTimer
	timerActive bool
	lastTimerID int
	interval    time.Duration

	anim tween.Animator
	main MainImage
	pub  Publisher
	log  *zap.Logger
}

// New creates a browser showing every image, page 0, first image selected
func New(opts Options) *Browser {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	b := &Browser{
		basePath: opts.BasePath,
		perPage:  opts.PerPage,
		mode:     opts.Mode,
		interval: opts.SlideshowInterval,
		filters:  domain.Filters{Size: domain.FilterAll, Direction: domain.FilterAll},
		anim:     opts.Animator,
		main:     opts.Main,
		pub:      opts.Publisher,
		log:      log.Named("gallery"),
	}
	if b.interval <= 0 {
		b.interval = DefaultSlideshowInterval
	}

	images := append([]string(nil), opts.Images...)
	switch b.mode {
	case ModeSimple:
		if len(images) > SimpleGridSize {
			images = images[:SimpleGridSize]
		}
		b.perPage = SimpleGridSize
	default:
		b.mode = ModeFull
		b.features = Features{Filtering: true, Pagination: true, Slideshow: true}
		if b.perPage <= 0 {
			b.perPage = DefaultPerPage
		}
	}

	b.all = images
	b.filtered = append([]string(nil), images...)
	return b
}

// SetMainImage attaches the main image element after construction
func (b *Browser) SetMainImage(main MainImage) {
	b.main = main
}

// Mode returns the feature level
func (b *Browser) Mode() string { return b.mode }

// Features returns what the browser accepts
func (b *Browser) Features() Features { return b.features }

// All returns every image
func (b *Browser) All() []string { return b.all }

// Filtered returns the images passing the active filters
func (b *Browser) Filtered() []string { return b.filtered }

// Filters returns the active filters
func (b *Browser) Filters() domain.Filters { return b.filters }

// Page returns the zero-based thumbnail page
func (b *Browser) Page() int { return b.page }

// Index returns the selected index into Filtered
func (b *Browser) Index() int { return b.index }

// PerPage returns the thumbnails per page
func (b *Browser) PerPage() int { return b.perPage }

// Pages returns the number of thumbnail pages
func (b *Browser) Pages() int {
	return (len(b.filtered) + b.perPage - 1) / b.perPage
}

// Path returns the on-disk location of an image
func (b *Browser) Path(name string) string {
	return filepath.Join(b.basePath, name)
}

// Current returns the selected image name
func (b *Browser) Current() (string, bool) {
	if b.index < 0 || b.index >= len(b.filtered) {
		return "", false
	}
	return b.filtered[b.index], true
}

// Show pushes the current selection into the main image without animation.
// An empty filtered set clears it.
func (b *Browser) Show() {
	if b.main == nil {
		return
	}
	b.main.SetSource(b.mainSource())
}

// mainSource is the path the main image should show, empty when nothing
// passes the filters
func (b *Browser) mainSource() string {
	name, ok := b.Current()
	if !ok {
		return ""
	}
	return b.Path(name)
}

// ApplyFilter sets one filter dimension, recomputes the filtered set and
// resets the selection to the first match
func (b *Browser) ApplyFilter(ft domain.FilterType, value string) bool {
	if !b.features.Filtering {
		return false
	}
	if value == "" {
		value = domain.FilterAll
	}
	switch ft {
	case domain.FilterSize:
		b.filters.Size = value
	case domain.FilterDirection:
		b.filters.Direction = value
	default:
		return false
	}

	b.filtered = Filter(b.all, b.filters)
	b.page = 0
	b.index = 0
	b.log.Debug("Filter applied",
		zap.String("type", string(ft)),
		zap.String("value", value),
		zap.Int("matches", len(b.filtered)))

	b.updateMain()
	b.publish(domain.FilterAppliedEvent{Filters: b.filters, Matches: len(b.filtered)})
	return true
}

// SelectImage selects index i of the filtered set and cross-fades the main
// image. Indices outside the filtered set are ignored.
func (b *Browser) SelectImage(i int) bool {
	if i < 0 || i >= len(b.filtered) {
		return false
	}
	b.index = i
	b.page = i / b.perPage
	b.updateMain()
	b.publish(domain.ImageSelectedEvent{Index: i, Name: b.filtered[i]})
	return true
}

// Navigate moves the selection by one, clamped to the filtered set. The
// thumbnail page follows the selection.
func (b *Browser) Navigate(dir domain.Direction) bool {
	next := b.index
	switch {
	case dir == domain.DirectionNext && b.index < len(b.filtered)-1:
		next++
	case dir == domain.DirectionPrev && b.index > 0:
		next--
	}
	if next == b.index {
		return false
	}

	if page := next / b.perPage; page != b.page {
		b.page = page
		b.publish(domain.PageChangedEvent{Page: page, Pages: b.Pages()})
	}
	return b.SelectImage(next)
}

// ChangePage moves the thumbnail page by one. The selection is left alone.
func (b *Browser) ChangePage(dir domain.Direction) bool {
	if !b.features.Pagination {
		return false
	}
	page := b.page
	switch {
	case dir == domain.DirectionNext && b.page < b.Pages()-1:
		page++
	case dir == domain.DirectionPrev && b.page > 0:
		page--
	}
	if page == b.page {
		return false
	}
	b.page = page
	b.publish(domain.PageChangedEvent{Page: page, Pages: b.Pages()})
	return true
}

// StartSlideshow arms a new slideshow timer, stopping any previous one first
func (b *Browser) StartSlideshow() (SlideshowTimer, bool) {
	if !b.features.Slideshow {
		return SlideshowTimer{}, false
	}
	b.StopSlideshow()

	b.lastTimerID++
	b.timer = SlideshowTimer{ID: b.lastTimerID, Interval: b.interval}
	b.timerActive = true
	b.log.Debug("Slideshow started", zap.Int("id", b.timer.ID), zap.Duration("interval", b.interval))
	b.publish(domain.SlideshowStartedEvent{ID: b.timer.ID})
	return b.timer, true
}

// StopSlideshow cancels the active timer. Stopping twice is a no-op.
func (b *Browser) StopSlideshow() {
	if !b.timerActive {
		return
	}
	b.timerActive = false
	b.log.Debug("Slideshow stopped", zap.Int("id", b.timer.ID))
	b.publish(domain.SlideshowStoppedEvent{ID: b.timer.ID})
}

// Slideshow returns the active timer
func (b *Browser) Slideshow() (SlideshowTimer, bool) {
	return b.timer, b.timerActive
}

// SlideshowTick advances the slideshow for timer id and reports whether the
// timer is still live. A tick from the last image wraps to the first image
// and page 0.
func (b *Browser) SlideshowTick(id int) bool {
	if !b.timerActive || id != b.timer.ID {
		return false
	}
	if len(b.filtered) == 0 {
		return true
	}
	if b.index == len(b.filtered)-1 {
		if b.page != 0 {
			b.publish(domain.PageChangedEvent{Page: 0, Pages: b.Pages()})
		}
		b.SelectImage(0)
		return true
	}
	b.Navigate(domain.DirectionNext)
	return true
}

// SizeOptions lists "all" followed by every size present, in natural order
func (b *Browser) SizeOptions() []string {
	seen := make(map[string]bool)
	var sizes []string
	for _, name := range b.all {
		if meta, ok := ParseImageMetadata(name); ok && !seen[meta.SizeTsubo] {
			seen[meta.SizeTsubo] = true
			sizes = append(sizes, meta.SizeTsubo)
		}
	}
	sort.Sort(natural.StringSlice(sizes))
	return append([]string{domain.FilterAll}, sizes...)
}

// DirectionOptions lists "all" followed by the compass directions
func (b *Browser) DirectionOptions() []string {
	return []string{domain.FilterAll, "N", "E", "S", "W"}
}

// CycleFilter advances a filter dimension to its next option
func (b *Browser) CycleFilter(ft domain.FilterType) bool {
	var options []string
	var current string
	switch ft {
	case domain.FilterSize:
		options, current = b.SizeOptions(), b.filters.Size
	case domain.FilterDirection:
		options, current = b.DirectionOptions(), b.filters.Direction
	default:
		return false
	}
	next := options[0]
	for i, o := range options {
		if o == current {
			next = options[(i+1)%len(options)]
			break
		}
	}
	return b.ApplyFilter(ft, next)
}

func (b *Browser) updateMain() {
	if b.main == nil || b.anim == nil {
		b.Show()
		return
	}
	src := b.mainSource()
	main, anim := b.main, b.anim
	anim.FadeTo(main, 0, mainFadeOut, func() {
		main.SetSource(src)
		anim.FadeTo(main, 1, mainFadeIn, nil)
	})
}

func (b *Browser) publish(e domain.DomainEvent) {
	if b.pub != nil {
		b.pub.Publish(e)
	}
}

// String renders a short state summary for debug logs
func (b *Browser) String() string {
	return fmt.Sprintf("gallery{mode=%s filters=%s/%s index=%d page=%d/%d filtered=%d/%d}",
		b.mode, b.filters.Size, b.filters.Direction, b.index, b.page, b.Pages(), len(b.filtered), len(b.all))
}
