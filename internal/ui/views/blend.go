package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"lifex/internal/tween"
)

// Visibility below which faded content is not drawn at all
const hiddenOpacity = 0.05

// Fade blends hex toward the background by opacity. Unparseable colors are
// returned unchanged.
func Fade(hex string, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return lipgloss.Color(hex)
	}
	fg, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	bg, err := colorful.Hex(Palette.Background)
	if err != nil {
		return lipgloss.Color(hex)
	}
	if opacity < 0 {
		opacity = 0
	}
	return lipgloss.Color(bg.BlendRgb(fg, opacity).Clamped().Hex())
}

// Transform is the visual state of an element read from its tween props
type Transform struct {
	Opacity float64
	Y       float64 // layout pixels, 10 per terminal row
	Scale   float64
}

// TransformOf reads the animated properties of a target. parent opacity
// multiplies in so children fade with their section.
func TransformOf(t tween.Target, parent float64) Transform {
	op := t.Get(tween.Opacity) * parent
	if op < 0 {
		op = 0
	}
	if op > 1 {
		op = 1
	}
	scale := t.Get(tween.Scale)
	if scale <= 0 {
		scale = 1
	}
	return Transform{Opacity: op, Y: t.Get(tween.Y), Scale: scale}
}

// Hidden reports whether the element is too faint to draw
func (tr Transform) Hidden() bool {
	return tr.Opacity < hiddenOpacity
}

// Apply shifts a rendered block down by Y and indents it as it scales up
func (tr Transform) Apply(block string, width int) string {
	rows := int(math.Round(tr.Y / 10))
	indent := 0
	if tr.Scale < 1 && width > 0 {
		indent = int(math.Round((1 - tr.Scale) * float64(width) / 4))
	}
	if indent > 0 {
		block = lipgloss.NewStyle().PaddingLeft(indent).Render(block)
	}
	if rows > 0 {
		block = strings.Repeat("\n", rows) + block
	}
	return block
}
