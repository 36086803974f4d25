package tween

import (
	"math"
	"regexp"
	"strconv"
)

// EaseFunc maps linear progress in [0,1] to eased progress
type EaseFunc func(t float64) float64

// DefaultEase is used when a tween names no ease
const DefaultEase = "power1.out"

var easeRe = regexp.MustCompile(`^(none|linear|sine|power[0-4]|back)(?:\.(in|out|inOut))?(?:\(([0-9.]+)\))?$`)

// Linear is the identity ease
func Linear(t float64) float64 { return t }

// ParseEase resolves an ease name. Unknown names fall back to DefaultEase.
func ParseEase(name string) EaseFunc {
	if name == "" {
		name = DefaultEase
	}
	m := easeRe.FindStringSubmatch(name)
	if m == nil {
		return ParseEase(DefaultEase)
	}
	kind, mode := m[1], m[2]
	if mode == "" {
		mode = "out"
	}

	var in EaseFunc
	switch kind {
	case "none", "linear", "power0":
		return Linear
	case "sine":
		in = func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }
	case "back":
		overshoot := 1.70158
		if m[3] != "" {
			if v, err := strconv.ParseFloat(m[3], 64); err == nil {
				overshoot = v
			}
		}
		in = func(t float64) float64 { return t * t * ((overshoot+1)*t - overshoot) }
	default:
		// powerN is a polynomial of degree N+1
		n, _ := strconv.Atoi(kind[len("power"):])
		exp := float64(n + 1)
		in = func(t float64) float64 { return math.Pow(t, exp) }
	}

	switch mode {
	case "in":
		return in
	case "inOut":
		return func(t float64) float64 {
			if t < 0.5 {
				return in(t*2) / 2
			}
			return 1 - in((1-t)*2)/2
		}
	default:
		return func(t float64) float64 { return 1 - in(1-t) }
	}
}
