package tween

import "time"

// Property names a tweenable value on a target
type Property string

const (
	Opacity Property = "opacity"
	Y       Property = "y"
	Scale   Property = "scale"
)

// Props is a set of property values, used as the before/after state of a tween
type Props map[Property]float64

// Target is anything whose properties can be animated
type Target interface {
	Get(p Property) float64
	Set(p Property, v float64)
}

// Options tunes a FromTo tween
type Options struct {
	Delay   time.Duration
	Stagger time.Duration // offset between consecutive targets
	Ease    string        // e.g. "power2.out", "back.out(1.2)"
}

// Animator is the capability the presenter drives transitions through
type Animator interface {
	FadeTo(t Target, opacity float64, d time.Duration, onComplete func())
	FromTo(targets []Target, from, to Props, d time.Duration, opts Options, onComplete func())
}

// Seconds converts fractional seconds to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
