package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ferrous/internal/playback"
)

// WatchServiceEvents returns a command that waits for the next session event.
// Update re-arms it after each delivered event.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{Previous: e.Previous, Current: e.Current, Index: e.Index}
		case e := <-sub.QueueChanged:
			return ServiceQueueChangedMsg{Count: len(e.Tracks)}
		case e := <-sub.ModeChanged:
			return ServiceModeChangedMsg{Shuffle: e.Shuffle, Repeat: e.Repeat, Liked: e.Liked}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Track: e.Track, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// RefreshCmd fetches the playlist from the library server.
func RefreshCmd(service playback.Service, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return RefreshDoneMsg{Err: service.Refresh(ctx)}
	}
}
