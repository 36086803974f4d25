package navigator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"lifex/internal/domain"
	"lifex/internal/tween"
)

// Control IDs the navigator keeps in sync
const (
	ButtonPrev = "btn-prev"
	ButtonNext = "btn-next"
)

// Section is a section container in the render tree
type Section interface {
	tween.Target
	SetActive(active bool)
	ScrollToTop()
}

// Indicator displays the "current / total" progress text
type Indicator interface {
	SetText(text string)
}

// Button is a prev/next control
type Button interface {
	SetDisabled(disabled bool)
}

// Scene is the read-only lookup into the render tree. Every lookup may
// come back empty; the navigator skips the step and keeps going.
type Scene interface {
	Section(n int) (Section, bool)
	Progress() (Indicator, bool)
	Button(id string) (Button, bool)
}

// Entrance plays the one-time content animation of a section that became active
type Entrance interface {
	PlayEntrance(section int)
}

// Publisher receives navigator events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Options configures a Navigator
type Options struct {
	TotalSections int
	Duration      time.Duration
	Scene         Scene
	Animator      tween.Animator
	Entrance      Entrance  // optional
	Publisher     Publisher // optional
	Logger        *zap.Logger
}

// Navigator sequences through sections with guarded crossfades.
//
// It is a two-state machine: Idle(current) and Transitioning(from, current).
// BeginTransition enters Transitioning; CompleteTransition, invoked by the
// incoming fade's completion callback, returns to Idle.
type Navigator struct {
	current   int
	from      int
	animating bool

	total    int
	duration time.Duration
	scene    Scene
	anim     tween.Animator
	entrance Entrance
	pub      Publisher
	log      *zap.Logger
}

// New creates a navigator positioned on section 1
func New(opts Options) *Navigator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	total := opts.TotalSections
	if total < 1 {
		total = 1
	}
	return &Navigator{
		current:  1,
		total:    total,
		duration: opts.Duration,
		scene:    opts.Scene,
		anim:     opts.Animator,
		entrance: opts.Entrance,
		pub:      opts.Publisher,
		log:      log.Named("navigator"),
	}
}

// Start syncs progress and buttons and shows the first section
func (n *Navigator) Start() {
	n.updateProgress()
	n.updateButtons()
	n.ShowSection(1)
}

// State returns a snapshot of the presentation state
func (n *Navigator) State() domain.PresentationState {
	return domain.PresentationState{
		Current:   n.current,
		Total:     n.total,
		Animating: n.animating,
		From:      n.from,
	}
}

// Current returns the current section number
func (n *Navigator) Current() int { return n.current }

// Total returns the number of sections
func (n *Navigator) Total() int { return n.total }

// Transitioning reports whether a crossfade is in progress
func (n *Navigator) Transitioning() bool { return n.animating }

// PrevDisabled reports whether the previous control is disabled
func (n *Navigator) PrevDisabled() bool { return n.current == 1 }

// NextDisabled reports whether the next control is disabled
func (n *Navigator) NextDisabled() bool { return n.current == n.total }

// Navigate moves one section forward or back. Bounds and the transition
// guard turn it into a no-op.
func (n *Navigator) Navigate(dir domain.Direction) bool {
	if n.animating {
		return false
	}
	target := n.current
	switch {
	case dir == domain.DirectionNext && n.current < n.total:
		target = n.current + 1
	case dir == domain.DirectionPrev && n.current > 1:
		target = n.current - 1
	}
	if target == n.current {
		return false
	}
	return n.BeginTransition(target)
}

// GoTo jumps to section m
func (n *Navigator) GoTo(m int) bool {
	if n.animating || m == n.current {
		return false
	}
	return n.BeginTransition(m)
}

// BeginTransition starts the crossfade from the current section to m and
// returns immediately. Out-of-range targets and calls made while another
// transition runs are rejected.
func (n *Navigator) BeginTransition(m int) bool {
	if m < 1 || m > n.total || n.animating {
		return false
	}

	n.animating = true
	n.from = n.current

	if out, ok := n.section(n.from); ok {
		n.anim.FadeTo(out, 0, n.duration, func() {
			out.SetActive(false)
		})
	}

	in, hasIncoming := n.section(m)
	if hasIncoming {
		in.SetActive(true)
		n.anim.FromTo([]tween.Target{in}, tween.Props{tween.Opacity: 0}, tween.Props{tween.Opacity: 1}, n.duration, tween.Options{}, n.CompleteTransition)
	}

	n.current = m
	n.updateProgress()
	n.updateButtons()
	if hasIncoming {
		in.ScrollToTop()
	}

	n.log.Debug("Transition started", zap.Int("from", n.from), zap.Int("to", m))
	n.publish(domain.TransitionStartedEvent{From: n.from, To: m})

	if !hasIncoming {
		// nothing will signal completion
		n.CompleteTransition()
	}
	return true
}

// CompleteTransition returns to Idle on the current section, releases the
// guard and plays the section's entrance. Extra calls are ignored.
func (n *Navigator) CompleteTransition() {
	if !n.animating {
		return
	}
	n.animating = false
	n.from = 0

	n.log.Debug("Transition completed", zap.Int("section", n.current))
	n.publish(domain.TransitionCompletedEvent{Section: n.current})

	if n.entrance != nil {
		n.entrance.PlayEntrance(n.current)
	}
}

// ShowSection marks k active and fades it in without a prior Idle state.
// It is the startup primitive for the first section.
func (n *Navigator) ShowSection(k int) {
	el, ok := n.section(k)
	if !ok {
		return
	}
	el.SetActive(true)
	n.anim.FromTo([]tween.Target{el}, tween.Props{tween.Opacity: 0}, tween.Props{tween.Opacity: 1}, n.duration, tween.Options{}, nil)
	if n.entrance != nil {
		n.entrance.PlayEntrance(k)
	}
}

// BeforeUnload returns a non-empty warning when leaving would lose the
// audience's place in the deck
func (n *Navigator) BeforeUnload() string {
	if n.current > 1 {
		return fmt.Sprintf("The presentation is on section %d of %d. Leave anyway?", n.current, n.total)
	}
	return ""
}

func (n *Navigator) section(k int) (Section, bool) {
	if n.scene == nil {
		return nil, false
	}
	return n.scene.Section(k)
}

func (n *Navigator) updateProgress() {
	if n.scene == nil {
		return
	}
	if p, ok := n.scene.Progress(); ok {
		p.SetText(fmt.Sprintf("%d / %d", n.current, n.total))
	}
}

func (n *Navigator) updateButtons() {
	if n.scene == nil {
		return
	}
	if b, ok := n.scene.Button(ButtonPrev); ok {
		b.SetDisabled(n.PrevDisabled())
	}
	if b, ok := n.scene.Button(ButtonNext); ok {
		b.SetDisabled(n.NextDisabled())
	}
}

func (n *Navigator) publish(e domain.DomainEvent) {
	if n.pub != nil {
		n.pub.Publish(e)
	}
}
