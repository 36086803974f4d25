package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"lifex/internal/scene"
)

// Rows taken by the header and footer around the section body
const chromeRows = 6

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	DeckTitle  string
	Sections   []*scene.Element // section containers, in deck order
	Gallery    *GalleryFrame    // nil when the deck has no gallery
	GalleryEl  *scene.Element   // the gallery section container
	Fullscreen bool

	Progress     string  // "current / total"
	Percent      float64 // current / total
	PrevDisabled bool
	NextDisabled bool

	StatusMessage string
	InputMode     string // name of a prompt mode, empty in normal mode
	TextInput     string // rendered text input
	Confirm       string // leave warning while confirming quit

	HelpModel help.Model
	Keys      help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	sectionRender *SectionRenderer
	galleryRender *GalleryRenderer
	popupRender   *PopupRenderer
	progress      progress.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		sectionRender: NewSectionRenderer(styles, NewMarkdownRenderer()),
		galleryRender: NewGalleryRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
		progress: progress.New(
			progress.WithGradient(Palette.Card, Palette.Gold),
			progress.WithoutPercentage(),
		),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}

	if state.Fullscreen && state.Gallery != nil {
		return r.galleryRender.RenderFullscreen(*state.Gallery, width, height)
	}

	innerWidth := width - 4 // Main padding
	bodyHeight := height - chromeRows
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	content := &strings.Builder{}
	content.WriteString(r.renderHeader(state, innerWidth))
	content.WriteString("\n\n")

	body := ""
	if sec := visibleSection(state.Sections); sec != nil {
		galleryBlock := ""
		if state.Gallery != nil && sec == state.GalleryEl {
			galleryBlock = r.galleryRender.Render(*state.Gallery, innerWidth)
		}
		body = r.sectionRender.Render(sec, innerWidth, bodyHeight, galleryBlock)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	content.WriteString(body)
	content.WriteString("\n")
	content.WriteString(r.renderFooter(state, innerWidth))

	out := r.styles.Main.Render(content.String())
	if state.Confirm != "" {
		popup := r.styles.Confirm.Render(state.Confirm) + "\n\n" + r.styles.Dim.Render("y: leave   n: stay")
		return r.popupRender.RenderPopupOverlay(out, popup, height, width, r.styles.PopupBox)
	}
	return out
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	logo := r.styles.Title.Render(state.DeckTitle)
	right := r.styles.Status.Render(state.Progress)

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	prev := r.styles.Button.Render("← prev")
	if state.PrevDisabled {
		prev = r.styles.ButtonOff.Render("← prev")
	}
	next := r.styles.Button.Render("next →")
	if state.NextDisabled {
		next = r.styles.ButtonOff.Render("next →")
	}

	r.progress.Width = width - lipgloss.Width(prev) - lipgloss.Width(next) - 2
	if r.progress.Width < 10 {
		r.progress.Width = 10
	}
	nav := prev + " " + r.progress.ViewAs(state.Percent) + " " + next

	var status string
	switch {
	case state.InputMode != "":
		status = r.styles.Prompt.Render(state.InputMode+": ") + state.TextInput
	case state.StatusMessage != "":
		status = r.styles.StatusWarning.Render(state.StatusMessage)
	case state.Keys != nil:
		status = state.HelpModel.View(state.Keys)
	}
	return nav + "\n" + status
}

// visibleSection picks the most opaque active section. During a crossfade
// both sections are active and the terminal can only show one.
func visibleSection(sections []*scene.Element) *scene.Element {
	var best *scene.Element
	for _, s := range sections {
		if !s.Active() {
			continue
		}
		if best == nil || s.Opacity() > best.Opacity() {
			best = s
		}
	}
	return best
}
