package gallery

import (
	"fmt"

	"lifex/internal/domain"
)

// Thumbnail is one entry of the visible thumbnail page
type Thumbnail struct {
	Index   int // index into the filtered set
	Name    string
	Path    string
	Active  bool
	Meta    Metadata
	HasMeta bool
}

// View is a pure projection of the browser state for rendering
type View struct {
	Thumbnails       []Thumbnail
	MainName         string
	MainPath         string
	Number           string // "{index+1} / {total}"
	Specs            string // "{size}坪 • {label}向き", empty for generic images
	Pagination       string // "{first}-{last} / {total}"
	PrevPageDisabled bool
	NextPageDisabled bool
	Page             int
	Pages            int
	Filters          domain.Filters
	Slideshow        bool
	Mode             string
}

// View derives thumbnails, info and pagination from the current state
func (b *Browser) View() View {
	total := len(b.filtered)
	v := View{
		Page:      b.page,
		Pages:     b.Pages(),
		Filters:   b.filters,
		Slideshow: b.timerActive,
		Mode:      b.mode,
	}

	start := b.page * b.perPage
	end := start + b.perPage
	if end > total {
		end = total
	}
	for i := start; i < end; i++ {
		name := b.filtered[i]
		meta, ok := ParseImageMetadata(name)
		v.Thumbnails = append(v.Thumbnails, Thumbnail{
			Index:   i,
			Name:    name,
			Path:    b.Path(name),
			Active:  i == b.index,
			Meta:    meta,
			HasMeta: ok,
		})
	}

	if total == 0 {
		v.Number = "0 / 0"
		v.Pagination = "0-0 / 0"
		v.PrevPageDisabled = true
		v.NextPageDisabled = true
		return v
	}

	v.Number = fmt.Sprintf("%d / %d", b.index+1, total)
	if name, ok := b.Current(); ok {
		v.MainName = name
		v.MainPath = b.Path(name)
		if meta, ok := ParseImageMetadata(name); ok {
			v.Specs = meta.Specs()
		}
	}

	v.Pagination = fmt.Sprintf("%d-%d / %d", start+1, end, total)
	v.PrevPageDisabled = b.page == 0
	v.NextPageDisabled = b.page == v.Pages-1
	return v
}
