package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of content colors. Content fades by blending these
// toward Background, so they must be hex values.
var Palette = struct {
	Background string
	Text       string
	Muted      string
	Accent     string
	Gold       string
	Card       string
	Number     string
}{
	Background: "#14161f",
	Text:       "#e8e6e3",
	Muted:      "#8a8f98",
	Accent:     "#c8a96a",
	Gold:       "#e0c27a",
	Card:       "#4a5060",
	Number:     "#f2d48a",
}

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	FilterActive  lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	HighlightBg   lipgloss.Style
	Button        lipgloss.Style
	ButtonOff     lipgloss.Style
	Prompt        lipgloss.Style
	PopupBox      lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Thumb         lipgloss.Style
	ThumbActive   lipgloss.Style
	ImageFrame    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FilterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		ButtonOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Thumb: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		ThumbActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1),
		ImageFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
	}
}
