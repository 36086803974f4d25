package ui

import (
	"fmt"
	"image"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"lifex/internal/ui/views"
)

const (
	renderCacheSize = 128

	// fades render at most this many distinct frames per image
	opacityLevels = 20
)

// previewKey identifies one decoded image at one terminal size
type previewKey struct {
	path   string
	width  int
	height int // terminal rows; the image has twice as many pixel rows
}

// renderKey identifies one half-block rendering of a decoded image
type renderKey struct {
	previewKey
	level int // opacity in 1/opacityLevels steps
}

// PreviewCache keeps recently decoded main images and their renderings.
// Decoding runs in a tea.Cmd so the frame loop never waits on disk.
type PreviewCache struct {
	images   *lru.Cache[previewKey, image.Image]
	rendered *lru.Cache[renderKey, string]
	pending  map[previewKey]bool
	failed   map[string]bool
	log      *zap.Logger
}

// NewPreviewCache creates a cache holding up to size images
func NewPreviewCache(size int, log *zap.Logger) (*PreviewCache, error) {
	images, err := lru.New[previewKey, image.Image](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview cache: %w", err)
	}
	rendered, err := lru.New[renderKey, string](renderCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}
	return &PreviewCache{
		images:   images,
		rendered: rendered,
		pending:  make(map[previewKey]bool),
		failed:   make(map[string]bool),
		log:      log,
	}, nil
}

// Get returns a decoded image for path at the given size
func (c *PreviewCache) Get(path string, width, height int) (image.Image, bool) {
	return c.images.Get(previewKey{path: path, width: width, height: height})
}

// Rendered returns the half-block drawing of a decoded image. Opacity is
// quantized so a fade reuses renderings instead of redrawing every frame.
func (c *PreviewCache) Rendered(path string, width, height int, opacity float64) (string, bool) {
	key := previewKey{path: path, width: width, height: height}
	img, ok := c.images.Get(key)
	if !ok {
		return "", false
	}
	rk := renderKey{previewKey: key, level: int(math.Round(min(max(opacity, 0), 1) * opacityLevels))}
	if out, ok := c.rendered.Get(rk); ok {
		return out, true
	}
	out := views.RenderHalfBlocks(img, float64(rk.level)/opacityLevels)
	c.rendered.Add(rk, out)
	return out, true
}

// Load returns a command decoding path, or nil when it is cached, already
// loading, or failed before
func (c *PreviewCache) Load(path string, width, height int) tea.Cmd {
	if path == "" || width <= 0 || height <= 0 || c.failed[path] {
		return nil
	}
	key := previewKey{path: path, width: width, height: height}
	if c.pending[key] || c.images.Contains(key) {
		return nil
	}
	c.pending[key] = true
	return func() tea.Msg {
		img, err := decodePreview(key)
		return previewLoadedMsg{key: key, img: img, err: err}
	}
}

// Store records the result of a Load command
func (c *PreviewCache) Store(msg previewLoadedMsg) {
	delete(c.pending, msg.key)
	if msg.err != nil {
		c.failed[msg.key.path] = true
		c.log.Warn("Failed to load image", zap.String("path", msg.key.path), zap.Error(msg.err))
		return
	}
	c.images.Add(msg.key, msg.img)
}

func decodePreview(key previewKey) (image.Image, error) {
	img, err := imaging.Open(key.path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return imaging.Fit(img, key.width, key.height*2, imaging.Lanczos), nil
}
