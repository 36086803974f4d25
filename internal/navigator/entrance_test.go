package navigator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifex/internal/domain"
	"lifex/internal/tween"
)

type call struct {
	targets int
	from    tween.Props
	to      tween.Props
	d       time.Duration
	opts    tween.Options
}

type recordingAnimator struct {
	calls []call
}

func (r *recordingAnimator) FadeTo(t tween.Target, opacity float64, d time.Duration, onComplete func()) {
	r.calls = append(r.calls, call{targets: 1, to: tween.Props{tween.Opacity: opacity}, d: d})
}

func (r *recordingAnimator) FromTo(targets []tween.Target, from, to tween.Props, d time.Duration, opts tween.Options, onComplete func()) {
	r.calls = append(r.calls, call{targets: len(targets), from: from, to: to, d: d, opts: opts})
}

type classQuery struct {
	sections map[int]map[string]int // section -> class -> count
}

func (q *classQuery) HasSection(section int) bool {
	_, ok := q.sections[section]
	return ok
}

func (q *classQuery) QueryAll(section int, classes ...string) []tween.Target {
	var out []tween.Target
	for _, c := range classes {
		for i := 0; i < q.sections[section][c]; i++ {
			out = append(out, &fakeSection{props: map[tween.Property]float64{}})
		}
	}
	return out
}

func TestEntranceGenericAndOpening(t *testing.T) {
	anim := &recordingAnimator{}
	query := &classQuery{sections: map[int]map[string]int{
		1: {"opening-title": 1, "opening-logo": 1, "spec-card": 2, "stat-card": 3},
	}}
	player := NewEntrancePlayer(anim, query, map[int]string{1: domain.KindOpening})

	var entered []string
	player.OnEnter(func(section int, kind string) { entered = append(entered, kind) })
	player.PlayEntrance(1)

	require.Len(t, anim.calls, 4)
	assert.Equal(t, 2, anim.calls[0].targets)
	assert.Equal(t, tween.Options{Stagger: 100 * time.Millisecond, Ease: "power2.out"}, anim.calls[0].opts)
	assert.Equal(t, 3, anim.calls[1].targets)
	assert.Equal(t, "back.out(1.2)", anim.calls[1].opts.Ease)
	assert.Equal(t, time.Second, anim.calls[2].d)
	assert.Equal(t, 500*time.Millisecond, anim.calls[3].opts.Delay)
	assert.Equal(t, []string{domain.KindOpening}, entered)
}

func TestEntranceGalleryAndRevenue(t *testing.T) {
	anim := &recordingAnimator{}
	query := &classQuery{sections: map[int]map[string]int{
		5:  {"gallery-container": 1, "gallery-thumbnail": 18},
		13: {"revenue-card": 3, "big-number": 2},
	}}
	player := NewEntrancePlayer(anim, query, map[int]string{5: domain.KindGallery, 13: domain.KindRevenue})

	player.PlayEntrance(5)
	require.Len(t, anim.calls, 2)
	assert.Equal(t, 18, anim.calls[1].targets)
	assert.Equal(t, tween.Options{Stagger: 50 * time.Millisecond, Delay: 300 * time.Millisecond, Ease: "back.out(1.5)"}, anim.calls[1].opts)

	anim.calls = nil
	player.PlayEntrance(13)
	require.Len(t, anim.calls, 3, "cards once, then one tween per big number")
	assert.Equal(t, 1, anim.calls[1].targets)
	assert.Equal(t, 1, anim.calls[2].targets)
}

func TestEntranceMissingSection(t *testing.T) {
	anim := &recordingAnimator{}
	player := NewEntrancePlayer(anim, &classQuery{}, nil)
	player.PlayEntrance(4)
	assert.Empty(t, anim.calls)
	assert.Equal(t, domain.KindGeneric, player.Kind(4))
}
