package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lifex/internal/domain"
	"lifex/internal/gallery"
	"lifex/internal/scene"
	"lifex/internal/ui/state"
)

const (
	thumbWidth    = 24 // including border and padding
	labelWidth    = thumbWidth - 4
	slottedThumbs = 9 // thumbnails reachable with the digit keys
)

// GalleryFrame is everything needed to draw the gallery section
type GalleryFrame struct {
	View             gallery.View
	Features         gallery.Features
	SizeOptions      []string
	DirectionOptions []string
	ViewMode         string // state.GalleryViewGrid or state.GalleryViewSlideshow
	Source           string // path currently shown by the main image
	Preview          string // rendered main image, empty until loaded
	MainOpacity      float64
	Thumbs           []*scene.Element // render-tree mirror of View.Thumbnails
}

// GalleryRenderer draws the gallery section content
type GalleryRenderer struct {
	styles *Styles
}

// NewGalleryRenderer creates a new gallery renderer
func NewGalleryRenderer(styles *Styles) *GalleryRenderer {
	return &GalleryRenderer{styles: styles}
}

// Render draws the filter bar, main image, info line, thumbnails and pagination
func (r *GalleryRenderer) Render(f GalleryFrame, width int) string {
	var parts []string

	if f.Features.Filtering {
		parts = append(parts, r.renderFilters(f))
	}

	parts = append(parts, r.renderMain(f, width), r.renderInfo(f.View))

	if len(f.View.Thumbnails) > 0 {
		parts = append(parts, r.renderThumbnails(f, width))
	}
	if f.Features.Pagination {
		parts = append(parts, r.renderPagination(f.View))
	}
	return strings.Join(parts, "\n")
}

// RenderFullscreen draws only the main image and its info line
func (r *GalleryRenderer) RenderFullscreen(f GalleryFrame, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center, r.renderMain(f, width), r.renderInfo(f.View))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (r *GalleryRenderer) renderFilters(f GalleryFrame) string {
	size := r.optionGroup("坪数", f.SizeOptions, f.View.Filters.Size, func(o string) string {
		if o == domain.FilterAll {
			return "全て"
		}
		return o + "坪"
	})
	dir := r.optionGroup("方位", f.DirectionOptions, f.View.Filters.Direction, func(o string) string {
		if o == domain.FilterAll {
			return "全て"
		}
		return gallery.DirectionLabel(o)
	})

	line := size + "   " + dir
	if f.Features.Slideshow {
		line += "   " + r.optionGroup("表示", []string{state.GalleryViewGrid, state.GalleryViewSlideshow}, f.ViewMode, nil)
	}
	return line
}

// optionGroup renders a filter button group with exactly one active value
func (r *GalleryRenderer) optionGroup(label string, options []string, active string, display func(string) string) string {
	items := []string{r.styles.Filter.Render(label + ":")}
	for _, o := range options {
		text := o
		if display != nil {
			text = display(o)
		}
		if o == active {
			items = append(items, r.styles.FilterActive.Render("["+text+"]"))
		} else {
			items = append(items, r.styles.Filter.Render(text))
		}
	}
	return strings.Join(items, " ")
}

func (r *GalleryRenderer) renderMain(f GalleryFrame, width int) string {
	if f.Preview != "" {
		return f.Preview
	}

	// placeholder frame until the preview is decoded
	name := ""
	if f.Source != "" {
		name = gallery.DisplayName(filepath.Base(f.Source))
	}
	if name == "" {
		name = "—"
	}
	text := lipgloss.NewStyle().Foreground(Fade(Palette.Text, f.MainOpacity)).Render(name)
	w := width - 2
	if w > 60 {
		w = 60
	}
	return r.styles.ImageFrame.
		BorderForeground(Fade(Palette.Card, f.MainOpacity)).
		Width(w).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

func (r *GalleryRenderer) renderInfo(v gallery.View) string {
	info := r.styles.Highlight.Render(v.Number)
	if v.Specs != "" {
		info += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(Palette.Accent)).Render(v.Specs)
	}
	if v.Slideshow {
		info += "  " + r.styles.Dim.Render("▶ slideshow")
	}
	return info
}

func (r *GalleryRenderer) renderThumbnails(f GalleryFrame, width int) string {
	cols := width / thumbWidth
	if cols < 1 {
		cols = 1
	}

	var rows []string
	var row []string
	for i, t := range f.View.Thumbnails {
		tr := Transform{Opacity: 1, Scale: 1}
		if i < len(f.Thumbs) {
			tr = TransformOf(f.Thumbs[i], 1)
		}
		row = append(row, r.renderThumb(i, t, tr))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (r *GalleryRenderer) renderThumb(slot int, t gallery.Thumbnail, tr Transform) string {
	style := r.styles.Thumb
	if t.Active {
		style = r.styles.ThumbActive
	}
	if tr.Hidden() {
		return lipgloss.NewStyle().Width(thumbWidth).Height(4).Render("")
	}

	label := ThumbLabel(t.Name, labelWidth)
	key := " "
	if slot < slottedThumbs {
		key = fmt.Sprintf("%d", slot+1)
	}
	meta := ""
	if t.HasMeta {
		meta = t.Meta.Specs()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(Fade(Palette.Muted, tr.Opacity)).Render(key)+" "+
			lipgloss.NewStyle().Foreground(Fade(Palette.Text, tr.Opacity)).Render(label),
		lipgloss.NewStyle().Foreground(Fade(Palette.Accent, tr.Opacity)).Render(meta),
	)
	box := style.Width(thumbWidth - 2).Render(content)
	return tr.Apply(box, thumbWidth)
}

func (r *GalleryRenderer) renderPagination(v gallery.View) string {
	prev := r.styles.Button.Render("‹ {")
	if v.PrevPageDisabled {
		prev = r.styles.ButtonOff.Render("‹ {")
	}
	next := r.styles.Button.Render("} ›")
	if v.NextPageDisabled {
		next = r.styles.ButtonOff.Render("} ›")
	}
	return prev + r.styles.Status.Render(v.Pagination) + next
}

// ThumbLabel shortens an image name to width display columns. The common
// render prefix and the extension are dropped first.
func ThumbLabel(name string, width int) string {
	label := gallery.DisplayName(name)
	label = strings.TrimSuffix(label, filepath.Ext(label))
	if i := strings.IndexRune(label, '　'); i >= 0 {
		label = label[i+len("　"):]
	}
	return runewidth.Truncate(label, width, "…")
}
