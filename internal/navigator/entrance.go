package navigator

import (
	"time"

	"lifex/internal/domain"
	"lifex/internal/tween"
)

// Class groups animated by every section
var (
	cardClasses = []string{"spec-card", "option-pack", "equipment-card", "category-card",
		"support-category-card", "benefit-card", "approach-card", "philosophy-item"}
	itemClasses = []string{"position-item", "plan-stat", "stat-card"}
)

// ContentQuery finds animatable sub-elements inside a section
type ContentQuery interface {
	QueryAll(section int, classes ...string) []tween.Target
	HasSection(section int) bool
}

// EntrancePlayer runs the per-section entrance animation
type EntrancePlayer struct {
	anim    tween.Animator
	query   ContentQuery
	kinds   map[int]string
	onEnter func(section int, kind string)
}

// NewEntrancePlayer creates a player. kinds maps section numbers to
// domain.Kind* values; missing entries are generic.
func NewEntrancePlayer(anim tween.Animator, query ContentQuery, kinds map[int]string) *EntrancePlayer {
	return &EntrancePlayer{anim: anim, query: query, kinds: kinds}
}

// OnEnter registers a hook run after a section's entrance was scheduled
func (p *EntrancePlayer) OnEnter(fn func(section int, kind string)) {
	p.onEnter = fn
}

// Kind returns the kind of a section
func (p *EntrancePlayer) Kind(section int) string {
	if k, ok := p.kinds[section]; ok {
		return k
	}
	return domain.KindGeneric
}

// PlayEntrance implements Entrance
func (p *EntrancePlayer) PlayEntrance(section int) {
	if !p.query.HasSection(section) {
		return
	}

	p.fromTo(section, cardClasses,
		tween.Props{tween.Opacity: 0, tween.Y: 20}, tween.Props{tween.Opacity: 1, tween.Y: 0},
		500*time.Millisecond, tween.Options{Stagger: 100 * time.Millisecond, Ease: "power2.out"})
	p.fromTo(section, itemClasses,
		tween.Props{tween.Opacity: 0, tween.Scale: 0.9}, tween.Props{tween.Opacity: 1, tween.Scale: 1},
		600*time.Millisecond, tween.Options{Stagger: 150 * time.Millisecond, Ease: "back.out(1.2)"})

	kind := p.Kind(section)
	switch kind {
	case domain.KindOpening:
		p.opening(section)
	case domain.KindGallery:
		p.gallery(section)
	case domain.KindRevenue:
		p.revenue(section)
	}

	if p.onEnter != nil {
		p.onEnter(section, kind)
	}
}

func (p *EntrancePlayer) opening(section int) {
	p.fromTo(section, []string{"opening-title"},
		tween.Props{tween.Opacity: 0, tween.Y: 30}, tween.Props{tween.Opacity: 1, tween.Y: 0},
		time.Second, tween.Options{Ease: "power2.out"})
	p.fromTo(section, []string{"opening-logo"},
		tween.Props{tween.Opacity: 0, tween.Scale: 0.8}, tween.Props{tween.Opacity: 1, tween.Scale: 1},
		time.Second, tween.Options{Delay: 500 * time.Millisecond, Ease: "power2.out"})
}

func (p *EntrancePlayer) gallery(section int) {
	p.fromTo(section, []string{"gallery-container"},
		tween.Props{tween.Opacity: 0, tween.Y: 20}, tween.Props{tween.Opacity: 1, tween.Y: 0},
		800*time.Millisecond, tween.Options{Ease: "power2.out"})
	p.fromTo(section, []string{"gallery-thumbnail"},
		tween.Props{tween.Opacity: 0, tween.Scale: 0.8}, tween.Props{tween.Opacity: 1, tween.Scale: 1},
		400*time.Millisecond, tween.Options{Stagger: 50 * time.Millisecond, Delay: 300 * time.Millisecond, Ease: "back.out(1.5)"})
}

func (p *EntrancePlayer) revenue(section int) {
	p.fromTo(section, []string{"revenue-card"},
		tween.Props{tween.Opacity: 0, tween.Scale: 0.9}, tween.Props{tween.Opacity: 1, tween.Scale: 1},
		500*time.Millisecond, tween.Options{Stagger: 100 * time.Millisecond, Ease: "back.out(1.2)"})

	// each number animates on its own, not staggered
	for _, num := range p.query.QueryAll(section, "big-number") {
		p.anim.FromTo([]tween.Target{num},
			tween.Props{tween.Opacity: 0, tween.Scale: 0.5}, tween.Props{tween.Opacity: 1, tween.Scale: 1},
			800*time.Millisecond, tween.Options{Delay: 500 * time.Millisecond, Ease: "back.out(1.5)"}, nil)
	}
}

func (p *EntrancePlayer) fromTo(section int, classes []string, from, to tween.Props, d time.Duration, opts tween.Options) {
	targets := p.query.QueryAll(section, classes...)
	if len(targets) == 0 {
		return
	}
	p.anim.FromTo(targets, from, to, d, opts, nil)
}
