package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ferrous/internal/errmsg"
)

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case RefreshDoneMsg:
		m.refreshDone(msg.Err)
	case ServiceClosedMsg:
		// Session is gone; the watcher stays disarmed.
	default:
		if m.applyServiceEvent(msg) {
			return m, m.WatchServiceEvents()
		}
	}
	return m, nil
}

func (m *Model) refreshDone(err error) {
	m.sync()
	if err != nil {
		m.log.Error().Err(err).Msg("library refresh failed")
		m.setError(errmsg.Format(errmsg.OpLibraryRefresh, err))
		return
	}
	m.setStatus(fmt.Sprintf("%d tracks in library", len(m.snap.Playlist)))
}

// applyServiceEvent folds a session event into the model. It reports false
// for messages that did not come from the subscription.
func (m *Model) applyServiceEvent(msg tea.Msg) bool {
	switch msg.(type) {
	case ServiceStateChangedMsg, ServiceTrackChangedMsg, ServiceQueueChangedMsg,
		ServiceModeChangedMsg, ServiceErrorMsg:
	default:
		return false
	}

	m.sync()
	switch ev := msg.(type) {
	case ServiceTrackChangedMsg:
		if ev.Current != "" && ev.Index >= 0 {
			m.playlist.Jump(ev.Index)
		}
	case ServiceErrorMsg:
		m.setError(errmsg.FormatWith(failedOp(ev.Operation), ev.Track, ev.Err))
	}
	return true
}

// failedOp names the session step that produced an ErrorEvent.
func failedOp(operation string) errmsg.Op {
	if operation == "load" {
		return errmsg.OpTrackLoad
	}
	return errmsg.OpPlaybackStart
}
