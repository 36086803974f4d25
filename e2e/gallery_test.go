//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGalleryPaginationAndFilters(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateWorkspace()
	require.NoError(t, err)
	// no image directory in the workspace, the builtin list is used
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(15))

	require.NoError(t, tf.GoTo(5))
	require.True(t, tf.SeePlain("5 / 15"))
	require.True(t, tf.SeePlain("1-18 / 40"), "first thumbnail page")

	// wait out the crossfade so the gallery section is on screen
	time.Sleep(800 * time.Millisecond)

	tf.Reset()
	require.NoError(t, tf.SendKeys("}"))
	require.True(t, tf.SeePlain("19-36 / 40"), "next page")

	tf.Reset()
	require.NoError(t, tf.SendKeys("]"))
	require.True(t, tf.SeePlain("2 / 40"), "next image")

	tf.Reset()
	require.NoError(t, tf.SendKeys("#10"+KeyEnter))
	require.True(t, tf.SeePlain("10 / 40"), "select by number")
	require.True(t, tf.SeePlain("30坪 • 西向き"), "info line follows the selection")

	require.NoError(t, tf.SendCtrlC())
}
