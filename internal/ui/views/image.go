package views

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// upperHalf draws the top pixel in the foreground and the bottom pixel in
// the background, two image rows per terminal row
const upperHalf = "▀"

// RenderHalfBlocks draws img with half-block glyphs, faded toward the
// background by opacity
func RenderHalfBlocks(img image.Image, opacity float64) string {
	if img == nil {
		return ""
	}
	bg, _ := colorful.Hex(Palette.Background)
	b := img.Bounds()
	base := lipgloss.NewStyle()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := pixel(img, x, y, bg, opacity)
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = pixel(img, x, y+1, bg, opacity)
			}
			sb.WriteString(base.
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(upperHalf))
		}
	}
	return sb.String()
}

func pixel(img image.Image, x, y int, bg colorful.Color, opacity float64) colorful.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// fully transparent
		return bg
	}
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return bg.BlendRgb(c, opacity).Clamped()
}
