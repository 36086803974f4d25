package gallery

import (
	"fmt"
	"regexp"

	"lifex/internal/domain"
)

// <prefix> <size>-<depth>-<direction>-<code>-<serial>.<ext>; only size and
// direction are read, anywhere in the name
var metadataRe = regexp.MustCompile(`(\d+)-\d+-([NESW])-`)

var directionLabels = map[string]string{
	"N": "北",
	"E": "東",
	"S": "南",
	"W": "西",
}

// Metadata is the structured part of a gallery filename
type Metadata struct {
	SizeTsubo string
	Direction string
}

// ParseImageMetadata extracts size and direction from a filename. Names that
// do not follow the convention are generic and report false.
func ParseImageMetadata(name string) (Metadata, bool) {
	m := metadataRe.FindStringSubmatch(name)
	if m == nil {
		return Metadata{}, false
	}
	return Metadata{SizeTsubo: m[1], Direction: m[2]}, true
}

// DirectionLabel returns the compass label for a direction code
func DirectionLabel(d string) string {
	if label, ok := directionLabels[d]; ok {
		return label
	}
	return d
}

// Specs formats the metadata as shown under the main image
func (m Metadata) Specs() string {
	return fmt.Sprintf("%s坪 • %s向き", m.SizeTsubo, DirectionLabel(m.Direction))
}

// Matches reports whether name passes the filters. Generic names always match.
func Matches(name string, f domain.Filters) bool {
	meta, ok := ParseImageMetadata(name)
	if !ok {
		return true
	}
	sizeOK := f.Size == domain.FilterAll || f.Size == "" || meta.SizeTsubo == f.Size
	dirOK := f.Direction == domain.FilterAll || f.Direction == "" || meta.Direction == f.Direction
	return sizeOK && dirOK
}

// Filter returns the order-preserving subset of names passing f
func Filter(names []string, f domain.Filters) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if Matches(name, f) {
			out = append(out, name)
		}
	}
	return out
}
