package gallery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"golang.org/x/text/unicode/norm"
)

// headerSize is enough for filetype to recognise every image format it knows
const headerSize = 261

// DisplayName normalizes a filename to NFC. Names read from macOS volumes
// arrive decomposed, which breaks width measurement and ordering of kana.
func DisplayName(name string) string {
	return norm.NFC.String(name)
}

// LoadDir lists the images in dir in natural order. Hidden files,
// directories and files that are not images by content are skipped.
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		ok, err := isImage(filepath.Join(dir, name))
		if err != nil || !ok {
			continue
		}
		names = append(names, name)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return natural.Less(DisplayName(names[i]), DisplayName(names[j]))
	})
	return names, nil
}

func isImage(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return filetype.IsImage(head[:n]), nil
}
