package deck

import (
	"fmt"

	"lifex/internal/domain"
	"lifex/internal/scene"
)

// Classes of the structural elements every section carries
const (
	ClassTitle     = "section-title"
	ClassSubtitle  = "section-subtitle"
	ClassBody      = "section-body"
	ClassBigNumber = "big-number"

	ClassOpeningTitle     = "opening-title"
	ClassOpeningLogo      = "opening-logo"
	ClassGalleryContainer = "gallery-container"
	ClassGalleryMain      = "gallery-main"
)

// SectionID returns the element ID of section n
func SectionID(n int) string {
	return fmt.Sprintf("section-%d", n)
}

// Build turns the deck into a render tree: one container per section plus
// the shared progress indicator and prev/next buttons.
func Build(d *Deck) *scene.Scene {
	sc := scene.New()
	for i, s := range d.Sections {
		n := i + 1
		sc.AddSection(n, buildSection(n, s))
	}

	sc.Register(scene.NewElement(scene.IDProgress, "progress"))
	sc.Register(scene.NewElement(scene.IDButtonPrev, "nav-btn"))
	sc.Register(scene.NewElement(scene.IDButtonNext, "nav-btn"))
	return sc
}

func buildSection(n int, s Section) *scene.Element {
	sec := scene.NewElement(SectionID(n), scene.ClassSection, s.Kind)

	titleClass := ClassTitle
	if s.Kind == domain.KindOpening {
		titleClass = ClassOpeningTitle
	}
	title := scene.NewElement("", titleClass)
	title.SetText(s.Title)
	sec.Append(title)

	if s.Subtitle != "" {
		sub := scene.NewElement("", ClassSubtitle)
		if s.Kind == domain.KindOpening {
			sub.Classes = append(sub.Classes, ClassOpeningLogo)
		}
		sub.SetText(s.Subtitle)
		sec.Append(sub)
	}

	if s.Body != "" {
		body := scene.NewElement("", ClassBody)
		body.SetText(s.Body)
		sec.Append(body)
	}

	if s.Kind == domain.KindGallery {
		container := scene.NewElement("", ClassGalleryContainer)
		container.Append(
			scene.NewElement(scene.IDGalleryMain, ClassGalleryMain),
			scene.NewElement(scene.IDGalleryThumbs, "gallery-thumbnails"),
			scene.NewElement(scene.IDPaginationPrev, "pagination-btn"),
			scene.NewElement(scene.IDPaginationNext, "pagination-btn"),
		)
		sec.Append(container)
	}

	for _, c := range s.Cards {
		card := scene.NewElement("", c.Class)
		card.SetText(c.Title)
		if c.Body != "" {
			body := scene.NewElement("", ClassBody)
			body.SetText(c.Body)
			card.Append(body)
		}
		if c.Value != "" {
			num := scene.NewElement("", ClassBigNumber)
			num.SetText(c.Value)
			card.Append(num)
		}
		sec.Append(card)
	}
	return sec
}
