package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifex/internal/eventbus"
	"lifex/internal/ui/state"
)

// ClearStatusMsg is sent when a status message expires
type ClearStatusMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state         *state.AppState
	statusTimeout time.Duration
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, statusTimeout time.Duration) *EventHandler {
	return &EventHandler{
		state:         appState,
		statusTimeout: statusTimeout,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	h.state.LastEvent = event.Type()

	switch e := event.(type) {
	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		return h.clearStatusLater()

	case eventbus.SlideshowStoppedEvent:
		h.state.SetSlideshow(false)

	case eventbus.SlideshowStartedEvent:
		h.state.SetSlideshow(true)
	}

	return nil
}

func (h *EventHandler) clearStatusLater() tea.Cmd {
	return tea.Tick(h.statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
