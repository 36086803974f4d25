package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifex/internal/deck"
	"lifex/internal/eventbus"
	"lifex/internal/gallery"
	"lifex/internal/ui/handlers"
	"lifex/internal/ui/state"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	d, err := deck.Load(deck.Full)
	require.NoError(t, err)

	m, err := NewModel(Options{Deck: d, Images: gallery.DefaultImages})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// press sends each key in turn. Plain strings are typed as runes.
func press(m *Model, keys ...any) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k := k.(type) {
		case tea.KeyType:
			msg = tea.KeyMsg{Type: k}
		case string:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, last = m.Update(msg)
	}
	return last
}

// settle lands every running tween
func settle(m *Model) {
	m.engine.Flush()
	m.state.Animating = false
}

func goToGallery(t *testing.T, m *Model) {
	t.Helper()
	settle(m)
	press(m, "g", "5", tea.KeyEnter)
	settle(m)
	require.Equal(t, 5, m.navigator.Current())
	require.True(t, m.onGallerySection())
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestNewModelRequiresDeck(t *testing.T) {
	_, err := NewModel(Options{})
	assert.Error(t, err)
}

func TestViewBeforeAndAfterSize(t *testing.T) {
	d, err := deck.Load(deck.Full)
	require.NoError(t, err)
	m, err := NewModel(Options{Deck: d, Images: gallery.DefaultImages})
	require.NoError(t, err)

	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.View()
	assert.Contains(t, out, d.Title)
	assert.Contains(t, out, "1 / 15")
}

func TestFrameLoopKeepsOneTickInFlight(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.engine.Active(), "the first section fades in")

	require.NotNil(t, m.Init())
	assert.True(t, m.state.Animating)
	assert.Nil(t, m.scheduleFrame(), "a tick is already scheduled")

	now := time.Now()
	for i := 0; i < 100 && m.engine.Active(); i++ {
		now = now.Add(maxFrameStep)
		m.Update(frameMsg(now))
	}
	assert.False(t, m.engine.Active())
	assert.False(t, m.state.Animating)
}

func TestArrowKeysNavigateWithGuard(t *testing.T) {
	m := newTestModel(t)
	settle(m)

	press(m, tea.KeyRight)
	assert.Equal(t, 2, m.navigator.Current())
	assert.True(t, m.navigator.Transitioning())

	press(m, tea.KeyRight)
	assert.Equal(t, 2, m.navigator.Current(), "input during a crossfade is dropped")

	settle(m)
	press(m, tea.KeyRight)
	assert.Equal(t, 3, m.navigator.Current())

	settle(m)
	press(m, tea.KeyEnd)
	settle(m)
	assert.Equal(t, 15, m.navigator.Current())
	assert.Contains(t, m.View(), "15 / 15")
}

func TestGotoPromptRejectsUnknownSection(t *testing.T) {
	m := newTestModel(t)
	settle(m)

	press(m, "g", "9", "9", tea.KeyEnter)
	assert.Equal(t, 1, m.navigator.Current())
	assert.Equal(t, "no section 99", m.state.StatusMessage)
	assert.Contains(t, m.View(), "no section 99")

	m.Update(handlers.ClearStatusMsg{})
	assert.Empty(t, m.state.StatusMessage)
}

func TestGalleryKeys(t *testing.T) {
	m := newTestModel(t)
	goToGallery(t, m)

	press(m, "2")
	assert.Equal(t, 1, m.gallery.Index())

	press(m, "#", "1", "0", tea.KeyEnter)
	assert.Equal(t, 9, m.gallery.Index())
	assert.Contains(t, m.View(), "30坪 • 西向き")

	press(m, "#", "4", "1", tea.KeyEnter)
	assert.Equal(t, 9, m.gallery.Index())
	assert.Equal(t, "no image 41", m.state.StatusMessage)

	press(m, "}")
	assert.Equal(t, 1, m.gallery.Page())
	assert.Equal(t, "19-36 / 40", m.gallery.View().Pagination)
	assert.Equal(t, 9, m.gallery.Index(), "paging leaves the selection alone")
}

func TestFullscreenOnlyOnGallery(t *testing.T) {
	m := newTestModel(t)
	settle(m)

	press(m, "f")
	assert.False(t, m.state.Fullscreen)

	goToGallery(t, m)
	press(m, "f")
	require.True(t, m.state.Fullscreen)

	press(m, tea.KeyRight)
	assert.Equal(t, 5, m.navigator.Current(), "arrows move the image in fullscreen")
	assert.Equal(t, 1, m.gallery.Index())

	press(m, tea.KeyEsc)
	assert.False(t, m.state.Fullscreen)
}

func TestSlideshowTicks(t *testing.T) {
	m := newTestModel(t)
	goToGallery(t, m)

	cmd := press(m, "s")
	require.NotNil(t, cmd)
	timer, running := m.gallery.Slideshow()
	require.True(t, running)
	assert.Equal(t, state.GalleryViewSlideshow, m.state.GalleryView)

	_, cmd = m.Update(slideshowTickMsg{id: timer.ID + 1})
	assert.Nil(t, cmd, "stale tick")
	assert.Equal(t, 0, m.gallery.Index())

	_, cmd = m.Update(slideshowTickMsg{id: timer.ID})
	assert.NotNil(t, cmd, "the next tick is armed")
	assert.Equal(t, 1, m.gallery.Index())

	press(m, "s")
	_, running = m.gallery.Slideshow()
	assert.False(t, running)
	assert.Equal(t, state.GalleryViewGrid, m.state.GalleryView)

	m.Update(slideshowTickMsg{id: timer.ID})
	assert.Equal(t, 1, m.gallery.Index())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	settle(m)
	assert.True(t, isQuit(press(m, "q")), "section 1 quits at once")

	m = newTestModel(t)
	settle(m)
	press(m, "g", "3", tea.KeyEnter)
	settle(m)

	assert.False(t, isQuit(press(m, "q")))
	assert.Contains(t, m.View(), "y: leave")

	press(m, "n")
	assert.Equal(t, 3, m.navigator.Current())

	press(m, "q")
	assert.True(t, isQuit(press(m, "y")))
}

func TestEventMsgUpdatesStatus(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "image missing"}})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Error: image missing", m.state.StatusMessage)
	assert.Equal(t, eventbus.EventError, m.state.LastEvent)
}

func TestPagerPausesRendering(t *testing.T) {
	m := newTestModel(t)
	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())

	m.Update(frameMsg(time.Now()))
	assert.False(t, m.engine.Active(), "frames land every tween while paused")

	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}
