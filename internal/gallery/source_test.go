package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plan 10-1-N-1-1.png", pngHeader)
	writeFile(t, dir, "plan 9-1-N-1-1.jpg", jpegHeader)
	writeFile(t, dir, "plan 100-1-S-1-1.jpg", jpegHeader)
	writeFile(t, dir, "notes.txt", []byte("not an image"))
	writeFile(t, dir, ".hidden.png", pngHeader)
	writeFile(t, dir, "empty.jpg", nil)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	names, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"plan 9-1-N-1-1.jpg",
		"plan 10-1-N-1-1.png",
		"plan 100-1-S-1-1.jpg",
	}, names)
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	decomposed := norm.NFD.String("パース外観")
	require.NotEqual(t, "パース外観", decomposed)
	assert.Equal(t, "パース外観", DisplayName(decomposed))
}
