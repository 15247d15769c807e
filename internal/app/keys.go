package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/llehouerou/ferrous/internal/equalizer"
	"github.com/llehouerou/ferrous/internal/errmsg"
	"github.com/llehouerou/ferrous/internal/keymap"
	"github.com/llehouerou/ferrous/internal/playback"
)

// handleKey resolves a key press to an action and runs it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())

	if m.showHelp && action != keymap.ActionQuit {
		m.showHelp = false
		return m, nil
	}

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
		return m, nil
	case keymap.ActionRefreshLibrary:
		m.setStatus("Refreshing library...")
		return m, RefreshCmd(m.service, m.refreshTimeout)
	}

	if m.handleNavigation(action) {
		return m, nil
	}

	m.runCommand(action)
	m.sync()
	return m, nil
}

// handleNavigation moves the playlist cursor. It reports whether the action
// was a navigation action.
func (m *Model) handleNavigation(action keymap.Action) bool {
	switch action {
	case keymap.ActionMoveUp:
		m.playlist.Move(-1)
	case keymap.ActionMoveDown:
		m.playlist.Move(1)
	case keymap.ActionJumpStart:
		m.playlist.Jump(0)
	case keymap.ActionJumpEnd:
		m.playlist.JumpEnd()
	case keymap.ActionPageUp:
		m.playlist.Move(-m.playlist.HalfPage())
	case keymap.ActionPageDown:
		m.playlist.Move(m.playlist.HalfPage())
	default:
		return false
	}
	return true
}

// runCommand forwards an action to the session and reports failures in the
// status line.
func (m *Model) runCommand(action keymap.Action) {
	svc := m.service
	eq := m.snap.Equalizer

	var (
		op  errmsg.Op
		err error
	)
	switch action {
	case keymap.ActionSelect:
		m.playSelected()
		return
	case keymap.ActionPlayPause:
		if !m.snap.HasTrack() {
			m.playSelected()
			return
		}
		op, err = errmsg.OpPlaybackToggle, svc.PlayPause()
	case keymap.ActionStop:
		op, err = errmsg.OpPlaybackStop, svc.Stop()
	case keymap.ActionNextTrack:
		op, err = errmsg.OpPlaybackNext, svc.Next()
	case keymap.ActionPrevTrack:
		op, err = errmsg.OpPlaybackPrevious, svc.Previous()
	case keymap.ActionToggleShuffle:
		op, err = errmsg.OpModeToggle, svc.ToggleShuffle()
	case keymap.ActionToggleRepeat:
		op, err = errmsg.OpModeToggle, svc.ToggleRepeat()
	case keymap.ActionToggleLiked:
		op, err = errmsg.OpModeToggle, svc.ToggleLiked()
	case keymap.ActionVolumeUp:
		op, err = errmsg.OpVolumeSet, svc.SetVolume(m.snap.Volume+volumeStep)
	case keymap.ActionVolumeDown:
		op, err = errmsg.OpVolumeSet, svc.SetVolume(m.snap.Volume-volumeStep)
	case keymap.ActionLowGainUp:
		op, err = errmsg.OpEqualizerSet, svc.SetLowShelfGain(eq.LowShelfGainDB+gainStepDB)
	case keymap.ActionLowGainDown:
		op, err = errmsg.OpEqualizerSet, svc.SetLowShelfGain(eq.LowShelfGainDB-gainStepDB)
	case keymap.ActionHighGainUp:
		op, err = errmsg.OpEqualizerSet, svc.SetHighShelfGain(eq.HighShelfGainDB+gainStepDB)
	case keymap.ActionHighGainDown:
		op, err = errmsg.OpEqualizerSet, svc.SetHighShelfGain(eq.HighShelfGainDB-gainStepDB)
	case keymap.ActionLowFreqUp:
		op, err = errmsg.OpEqualizerSet, svc.SetLowShelfFreq(eq.LowShelfFreqHz+lowFreqStep)
	case keymap.ActionLowFreqDown:
		op, err = errmsg.OpEqualizerSet, svc.SetLowShelfFreq(eq.LowShelfFreqHz-lowFreqStep)
	case keymap.ActionHighFreqUp:
		op, err = errmsg.OpEqualizerSet, svc.SetHighShelfFreq(eq.HighShelfFreqHz+highFreqStep)
	case keymap.ActionHighFreqDown:
		op, err = errmsg.OpEqualizerSet, svc.SetHighShelfFreq(eq.HighShelfFreqHz-highFreqStep)
	case keymap.ActionCyclePreset:
		m.cyclePreset()
		return
	default:
		return
	}

	// Media keys and key repeat hit the ends of short playlists often.
	if errors.Is(err, playback.ErrNavigationNoop) {
		return
	}
	if err != nil {
		m.log.Warn().Err(err).Str("action", string(action)).Msg("command failed")
		m.setError(errmsg.Format(op, err))
	}
}

func (m *Model) playSelected() {
	track, ok := m.playlist.Selected()
	if !ok {
		return
	}
	if err := m.service.Play(track); err != nil {
		m.log.Warn().Err(err).Str("track", track).Msg("play failed")
		m.setError(errmsg.FormatWith(errmsg.OpPlaybackStart, track, err))
		return
	}
	m.setStatus("")
}

func (m *Model) cyclePreset() {
	presets := equalizer.Presets()
	m.presetIdx = (m.presetIdx + 1) % len(presets)
	name := presets[m.presetIdx].Name

	if err := m.service.ApplyEqualizerPreset(name); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpEqualizerPreset, name, err))
		return
	}
	m.setStatus(fmt.Sprintf("Equalizer preset: %s", name))
}
