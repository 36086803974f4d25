// Package deck holds the static presentation content: the ordered section
// list, each section's kind and the cards its entrance animation targets.
package deck

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"lifex/internal/domain"
)

// Built-in deck names
const (
	Full    = "full"
	Compact = "compact"
)

//go:embed decks/*.yaml
var builtin embed.FS

// Card is one animated block inside a section. Class selects the entrance
// group it belongs to (spec-card, stat-card, revenue-card, ...).
type Card struct {
	Class string `yaml:"class"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
	Value string `yaml:"value,omitempty"` // rendered as a big number
}

// Section is one slide of the deck
type Section struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Kind     string `yaml:"kind,omitempty"`
	Body     string `yaml:"body,omitempty"` // markdown
	Cards    []Card `yaml:"cards,omitempty"`
}

// Deck is an ordered list of sections
type Deck struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Load returns a built-in deck by name, or reads name as a YAML file path
func Load(name string) (*Deck, error) {
	if name == "" {
		name = Full
	}

	var (
		data []byte
		err  error
	)
	switch name {
	case Full, Compact:
		data, err = builtin.ReadFile("decks/" + name + ".yaml")
	default:
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %q: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML deck
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	for i := range d.Sections {
		if d.Sections[i].Kind == "" {
			d.Sections[i].Kind = domain.KindGeneric
		}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate reports every problem with the deck at once
func (d *Deck) Validate() error {
	var err error
	if len(d.Sections) == 0 {
		err = multierr.Append(err, errors.New("deck has no sections"))
	}

	galleries := 0
	for i, s := range d.Sections {
		n := i + 1
		if strings.TrimSpace(s.Title) == "" {
			err = multierr.Append(err, fmt.Errorf("section %d: missing title", n))
		}
		switch s.Kind {
		case domain.KindGeneric, domain.KindOpening, domain.KindRevenue:
		case domain.KindGallery:
			galleries++
		default:
			err = multierr.Append(err, fmt.Errorf("section %d: unknown kind %q", n, s.Kind))
		}
		for j, c := range s.Cards {
			if c.Class == "" {
				err = multierr.Append(err, fmt.Errorf("section %d card %d: missing class", n, j+1))
			}
		}
	}
	if galleries > 1 {
		err = multierr.Append(err, fmt.Errorf("deck has %d gallery sections, at most one is supported", galleries))
	}
	return err
}

// Total returns the number of sections
func (d *Deck) Total() int {
	return len(d.Sections)
}

// Kinds maps 1-based section numbers to their kind
func (d *Deck) Kinds() map[int]string {
	kinds := make(map[int]string, len(d.Sections))
	for i, s := range d.Sections {
		kinds[i+1] = s.Kind
	}
	return kinds
}

// GallerySection returns the number of the gallery section
func (d *Deck) GallerySection() (int, bool) {
	for i, s := range d.Sections {
		if s.Kind == domain.KindGallery {
			return i + 1, true
		}
	}
	return 0, false
}

// Section returns section n (1-based)
func (d *Deck) Section(n int) (Section, bool) {
	if n < 1 || n > len(d.Sections) {
		return Section{}, false
	}
	return d.Sections[n-1], true
}

// Builtin lists the embedded deck names
func Builtin() []string {
	return []string{Full, Compact}
}
