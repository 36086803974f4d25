package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap documents the shortcuts for the footer and the help pager. Input
// itself is decoded by the mode handlers.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	Scroll     key.Binding
	Goto       key.Binding
	Help       key.Binding
	Quit       key.Binding
	Image      key.Binding
	Page       key.Binding
	Size       key.Binding
	Direction  key.Binding
	Slideshow  key.Binding
	Thumbnail  key.Binding
	Number     key.Binding
	Fullscreen key.Binding

	onGallery bool
}

func newKeyMap() keyMap {
	return keyMap{
		Next:       key.NewBinding(key.WithKeys("right", " "), key.WithHelp("→/space", "next section")),
		Prev:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous section")),
		First:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first section")),
		Last:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last section")),
		Scroll:     key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Goto:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to section")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Image:      key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "prev/next image")),
		Page:       key.NewBinding(key.WithKeys("{", "}"), key.WithHelp("{/}", "prev/next page")),
		Size:       key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "size filter")),
		Direction:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "direction filter")),
		Slideshow:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "slideshow")),
		Thumbnail:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick thumbnail")),
		Number:     key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "image by number")),
		Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	if k.onGallery {
		return []key.Binding{k.Next, k.Prev, k.Image, k.Page, k.Size, k.Direction, k.Slideshow, k.Help, k.Quit}
	}
	return []key.Binding{k.Next, k.Prev, k.Goto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last, k.Scroll, k.Goto},
		{k.Image, k.Page, k.Size, k.Direction, k.Slideshow, k.Thumbnail, k.Number, k.Fullscreen},
		{k.Help, k.Quit},
	}
}
