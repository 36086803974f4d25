package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHelpFollowsSection(t *testing.T) {
	keys := newKeyMap()
	plain := keys.ShortHelp()

	keys.onGallery = true
	onGallery := keys.ShortHelp()
	assert.NotEqual(t, len(plain), len(onGallery))
	assert.Contains(t, onGallery, keys.Image)
	assert.NotContains(t, plain, keys.Image)
}

func TestRenderHelpContent(t *testing.T) {
	r := NewHelpRenderer(newKeyMap())

	withGallery := r.RenderHelpContent("LIFE X", true)
	assert.Contains(t, withGallery, "LIFE X Help")
	assert.Contains(t, withGallery, "next section")
	assert.Contains(t, withGallery, "image by number")
	assert.Contains(t, withGallery, "Gallery")

	compact := r.RenderHelpContent("LIFE X", false)
	assert.Contains(t, compact, "go to section")
	assert.NotContains(t, compact, "image by number")
}
