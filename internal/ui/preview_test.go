package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{G: 180, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "外観.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func loadNow(t *testing.T, c *PreviewCache, path string, w, h int) {
	t.Helper()
	cmd := c.Load(path, w, h)
	require.NotNil(t, cmd)
	msg, ok := cmd().(previewLoadedMsg)
	require.True(t, ok)
	c.Store(msg)
}

func TestPreviewCacheDecodesAndFits(t *testing.T) {
	c, err := NewPreviewCache(4, zap.NewNop())
	require.NoError(t, err)
	path := writePNG(t, 200, 100)

	_, ok := c.Get(path, 40, 10)
	assert.False(t, ok)

	cmd := c.Load(path, 40, 10)
	require.NotNil(t, cmd)
	assert.Nil(t, c.Load(path, 40, 10), "already loading")

	c.Store(cmd().(previewLoadedMsg))
	img, ok := c.Get(path, 40, 10)
	require.True(t, ok)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy(), "aspect ratio is kept")

	assert.Nil(t, c.Load(path, 40, 10), "cached")
	assert.NotNil(t, c.Load(path, 80, 20), "each size decodes separately")
}

func TestPreviewCacheRemembersFailures(t *testing.T) {
	c, err := NewPreviewCache(4, zap.NewNop())
	require.NoError(t, err)
	missing := filepath.Join(t.TempDir(), "missing.jpg")

	loadNow(t, c, missing, 40, 10)
	_, ok := c.Get(missing, 40, 10)
	assert.False(t, ok)
	assert.Nil(t, c.Load(missing, 40, 10), "failed paths are not retried")
	assert.Nil(t, c.Load(missing, 80, 20))
}

func TestPreviewCacheReusesRenderings(t *testing.T) {
	c, err := NewPreviewCache(4, zap.NewNop())
	require.NoError(t, err)
	path := writePNG(t, 20, 10)

	_, ok := c.Rendered(path, 20, 5, 1)
	assert.False(t, ok, "not decoded yet")

	loadNow(t, c, path, 20, 5)
	first, ok := c.Rendered(path, 20, 5, 0.51)
	require.True(t, ok)
	assert.Contains(t, first, "▀")

	again, ok := c.Rendered(path, 20, 5, 0.52)
	require.True(t, ok)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, c.rendered.Len(), "nearby opacities share a rendering")

	c.Rendered(path, 20, 5, 1)
	assert.Equal(t, 2, c.rendered.Len())
}

func TestPreviewCacheIgnoresEmptyRequests(t *testing.T) {
	c, err := NewPreviewCache(4, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, c.Load("", 40, 10))
	assert.Nil(t, c.Load("x.png", 0, 10))
}

func TestPreviewShownInGalleryFrame(t *testing.T) {
	m := newTestModel(t)
	goToGallery(t, m)

	main, ok := m.scene.MainImage()
	require.True(t, ok)
	path := writePNG(t, 60, 40)
	main.SetSource(path)

	w, h := m.previewSize()
	loadNow(t, m.previews, path, w, h)

	frame := m.galleryFrame()
	assert.Equal(t, path, frame.Source)
	assert.Contains(t, frame.Preview, "▀")
}
