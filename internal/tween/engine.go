package tween

import "time"

// tweenState is one running interpolation on a single target
type tweenState struct {
	target  Target
	from    Props // nil until the tween starts for To tweens
	to      Props
	start   time.Duration
	dur     time.Duration
	ease    EaseFunc
	started bool
	done    bool
	group   *group
}

// group tracks the tweens created by one call so onComplete fires once
type group struct {
	remaining  int
	onComplete func()
}

// Engine is a frame-driven tween scheduler. It is not safe for concurrent
// use; the UI loop owns it and advances it on every frame tick.
type Engine struct {
	clock  time.Duration
	tweens []*tweenState
}

// New creates an idle engine
func New() *Engine {
	return &Engine{}
}

// FadeTo animates the opacity of t from its current value
func (e *Engine) FadeTo(t Target, opacity float64, d time.Duration, onComplete func()) {
	e.To([]Target{t}, Props{Opacity: opacity}, d, Options{}, onComplete)
}

// To animates targets from their current values to the given props
func (e *Engine) To(targets []Target, to Props, d time.Duration, opts Options, onComplete func()) {
	e.add(targets, nil, to, d, opts, onComplete)
}

// FromTo applies from immediately and animates targets to the given props
func (e *Engine) FromTo(targets []Target, from, to Props, d time.Duration, opts Options, onComplete func()) {
	for _, t := range targets {
		apply(t, from)
	}
	e.add(targets, from, to, d, opts, onComplete)
}

func (e *Engine) add(targets []Target, from, to Props, d time.Duration, opts Options, onComplete func()) {
	if len(targets) == 0 {
		if onComplete != nil {
			onComplete()
		}
		return
	}
	g := &group{remaining: len(targets), onComplete: onComplete}
	ease := ParseEase(opts.Ease)
	for i, t := range targets {
		ts := &tweenState{
			target: t,
			to:     to,
			start:  e.clock + opts.Delay + time.Duration(i)*opts.Stagger,
			dur:    d,
			ease:   ease,
			group:  g,
		}
		if from != nil {
			ts.from = copyProps(from)
			ts.started = true
		}
		e.tweens = append(e.tweens, ts)
	}
}

// Advance moves the engine clock forward, updates every running tween and
// fires completion callbacks. Callbacks may schedule new tweens; those start
// at the advanced clock.
func (e *Engine) Advance(dt time.Duration) {
	e.clock += dt

	var callbacks []func()
	current := e.tweens
	for _, ts := range current {
		if ts.done || e.clock < ts.start {
			continue
		}
		if !ts.started {
			ts.from = snapshot(ts.target, ts.to)
			ts.started = true
		}

		progress := 1.0
		if ts.dur > 0 {
			progress = float64(e.clock-ts.start) / float64(ts.dur)
			if progress > 1 {
				progress = 1
			}
		}
		eased := ts.ease(progress)
		for p, end := range ts.to {
			if progress == 1 {
				ts.target.Set(p, end)
				continue
			}
			begin := ts.from[p]
			ts.target.Set(p, begin+(end-begin)*eased)
		}

		if progress == 1 {
			ts.done = true
			ts.group.remaining--
			if ts.group.remaining == 0 && ts.group.onComplete != nil {
				callbacks = append(callbacks, ts.group.onComplete)
			}
		}
	}

	for _, cb := range callbacks {
		cb()
	}

	alive := e.tweens[:0]
	for _, ts := range e.tweens {
		if !ts.done {
			alive = append(alive, ts)
		}
	}
	for i := len(alive); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = alive
}

// Active reports whether any tween is pending or running
func (e *Engine) Active() bool {
	return len(e.tweens) > 0
}

// Flush runs every pending tween, including ones scheduled by callbacks, to completion
func (e *Engine) Flush() {
	for i := 0; e.Active() && i < 64; i++ {
		e.Advance(e.remaining())
	}
}

// remaining returns the time until the last known tween ends
func (e *Engine) remaining() time.Duration {
	var longest time.Duration
	for _, ts := range e.tweens {
		if end := ts.start + ts.dur - e.clock; end > longest {
			longest = end
		}
	}
	return longest
}

func apply(t Target, props Props) {
	for p, v := range props {
		t.Set(p, v)
	}
}

func snapshot(t Target, keys Props) Props {
	out := make(Props, len(keys))
	for p := range keys {
		out[p] = t.Get(p)
	}
	return out
}

func copyProps(props Props) Props {
	out := make(Props, len(props))
	for p, v := range props {
		out[p] = v
	}
	return out
}
