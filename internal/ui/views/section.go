package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifex/internal/deck"
	"lifex/internal/scene"
)

// Widest a card may get before cards wrap onto another row
const maxCardsPerRow = 3

// SectionRenderer draws one section container of the render tree
type SectionRenderer struct {
	styles *Styles
	md     *MarkdownRenderer
}

// NewSectionRenderer creates a new section renderer
func NewSectionRenderer(styles *Styles, md *MarkdownRenderer) *SectionRenderer {
	return &SectionRenderer{styles: styles, md: md}
}

// Render draws sec at its current opacity. galleryBlock is drawn in place of
// the gallery container and may be empty.
func (r *SectionRenderer) Render(sec *scene.Element, width, height int, galleryBlock string) string {
	parent := TransformOf(sec, 1)
	if parent.Hidden() {
		return ""
	}

	var blocks []string
	var cards []*scene.Element
	flushCards := func() {
		if len(cards) > 0 {
			blocks = append(blocks, r.renderCards(cards, parent.Opacity, width))
			cards = nil
		}
	}

	for _, child := range sec.Children() {
		tr := TransformOf(child, parent.Opacity)
		switch {
		case child.HasClass(deck.ClassOpeningTitle):
			flushCards()
			if !tr.Hidden() {
				title := lipgloss.NewStyle().Bold(true).Foreground(Fade(Palette.Gold, tr.Opacity)).
					Width(width).Align(lipgloss.Center).Render(spaced(child.Text))
				blocks = append(blocks, tr.Apply("\n"+title+"\n", width))
			}

		case child.HasClass(deck.ClassTitle):
			flushCards()
			if !tr.Hidden() {
				blocks = append(blocks, lipgloss.NewStyle().Bold(true).
					Foreground(Fade(Palette.Accent, tr.Opacity)).Render(child.Text))
			}

		case child.HasClass(deck.ClassSubtitle):
			flushCards()
			if !tr.Hidden() {
				style := lipgloss.NewStyle().Foreground(Fade(Palette.Muted, tr.Opacity))
				if child.HasClass(deck.ClassOpeningLogo) {
					style = style.Width(width).Align(lipgloss.Center).Italic(true)
				}
				blocks = append(blocks, tr.Apply(style.Render(child.Text), width))
			}

		case child.HasClass(deck.ClassBody):
			flushCards()
			// glamour output carries its own colors, so it snaps in at half fade
			if tr.Opacity >= 0.5 {
				blocks = append(blocks, r.md.Render(child.Text, width))
			}

		case child.HasClass(deck.ClassGalleryContainer):
			flushCards()
			if galleryBlock != "" && !tr.Hidden() {
				blocks = append(blocks, tr.Apply(galleryBlock, width))
			}

		default:
			cards = append(cards, child)
		}
	}
	flushCards()

	out := strings.Join(blocks, "\n\n")
	return scroll(out, sec, height)
}

func (r *SectionRenderer) renderCards(cards []*scene.Element, parent float64, width int) string {
	perRow := len(cards)
	if perRow > maxCardsPerRow {
		perRow = maxCardsPerRow
	}
	cardWidth := (width - 2*(perRow-1)) / perRow
	if cardWidth < 16 {
		cardWidth = 16
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		var cells []string
		for _, c := range cards[start:end] {
			cells = append(cells, r.renderCard(c, parent, cardWidth), "  ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[:len(cells)-1]...))
	}
	return strings.Join(rows, "\n")
}

func (r *SectionRenderer) renderCard(card *scene.Element, parent float64, width int) string {
	tr := TransformOf(card, parent)
	if tr.Hidden() {
		// keep the slot so neighbours do not jump while it fades in
		return lipgloss.NewStyle().Width(width).Render("")
	}

	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(Fade(Palette.Text, tr.Opacity)).Render(card.Text)}
	for _, child := range card.Children() {
		ctr := TransformOf(child, tr.Opacity)
		if ctr.Hidden() {
			continue
		}
		switch {
		case child.HasClass(deck.ClassBigNumber):
			num := lipgloss.NewStyle().Bold(true).Foreground(Fade(Palette.Number, ctr.Opacity)).Render(child.Text)
			lines = append(lines, "", ctr.Apply(num, width/2))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(Fade(Palette.Muted, ctr.Opacity)).Render(child.Text))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Fade(Palette.Card, tr.Opacity)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
	return tr.Apply(box, width)
}

// scroll drops the rows above the section's scroll offset and clamps the
// offset so the last row stays reachable
func scroll(block string, sec *scene.Element, height int) string {
	lines := strings.Split(block, "\n")
	top := sec.ScrollTop()
	if height > 0 && top > len(lines)-height {
		top = len(lines) - height
	}
	if top <= 0 {
		return block
	}
	return strings.Join(lines[top:], "\n")
}

// spaced widens a display title: "LIFE X" -> "L I F E   X"
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
