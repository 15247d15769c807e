// Package playerbar renders the now-playing bar from a session snapshot.
package playerbar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ferrous/internal/equalizer"
	"github.com/llehouerou/ferrous/internal/playback"
	"github.com/llehouerou/ferrous/internal/ui/render"
	"github.com/llehouerou/ferrous/internal/ui/styles"
)

const (
	playSymbol    = "▶"
	pauseSymbol   = "⏸"
	loadingSymbol = "…"
	stopSymbol    = "■"
	errorSymbol   = "✗"
)

const volumeMeterWidth = 10

// Height is the rendered height: border, two content rows, border.
const Height = 4

// State holds everything needed to render the player bar.
type State struct {
	Status    playback.State
	Track     string
	Title     string
	Artist    string
	Album     string
	Year      int
	Format    string
	Duration  time.Duration
	Shuffle   bool
	Repeat    bool
	Liked     bool
	Volume    float64
	Equalizer equalizer.Settings
	EQActive  bool
	Error     string
}

// NewState builds a State from a session snapshot.
func NewState(snap playback.Snapshot) State {
	s := State{
		Status:    snap.State,
		Track:     snap.CurrentTrack,
		Title:     snap.CurrentTrack,
		Shuffle:   snap.Shuffle,
		Repeat:    snap.Repeat,
		Liked:     snap.Liked,
		Volume:    snap.Volume,
		Equalizer: snap.Equalizer,
		EQActive:  snap.EqualizerActive,
		Error:     snap.Error,
	}
	if info := snap.Info; info != nil {
		if info.Title != "" {
			s.Title = info.Title
		}
		s.Artist = info.Artist
		s.Album = info.Album
		s.Year = info.Year
		s.Format = info.Format
		s.Duration = info.Duration
	}
	return s
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0) // border and padding

	top := render.Row(renderTrack(s, innerWidth/2), renderModes(s), innerWidth)
	bottom := render.Row(renderEqualizer(s), renderVolume(s.Volume), innerWidth)

	t := styles.T()
	return t.S().Panel.
		Padding(0, 2).
		Width(max(width-2, 0)).
		Render(top + "\n" + bottom)
}

func renderTrack(s State, maxWidth int) string {
	st := styles.T().S()

	if s.Status == playback.StateError {
		msg := s.Error
		if msg == "" {
			msg = "playback failed"
		}
		return st.Error.Render(errorSymbol + "  " + render.Truncate(msg, maxWidth))
	}
	if s.Track == "" {
		return st.Muted.Render(stopSymbol + "  Nothing playing")
	}

	title := st.Title.Render(render.Truncate(s.Title, maxWidth))

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	if s.Year > 0 {
		infoParts = append(infoParts, strconv.Itoa(s.Year))
	}
	if s.Duration > 0 {
		infoParts = append(infoParts, formatDuration(s.Duration))
	}

	line := statusSymbol(s.Status) + "  " + title
	if len(infoParts) > 0 {
		remaining := maxWidth - lipgloss.Width(s.Title) - 3
		if remaining > 3 {
			info := render.Truncate(strings.Join(infoParts, " · "), remaining)
			line += "   " + st.Muted.Render(info)
		}
	}
	return line
}

func statusSymbol(state playback.State) string {
	switch state {
	case playback.StatePlaying:
		return styles.T().S().Playing.Render(playSymbol)
	case playback.StatePaused:
		return pauseSymbol
	case playback.StateLoading:
		return loadingSymbol
	default:
		return stopSymbol
	}
}

// renderModes lists the active modes, dimming the inactive ones.
func renderModes(s State) string {
	st := styles.T().S()
	flag := func(on bool, label string) string {
		if on {
			return st.Playing.Render(label)
		}
		return st.Subtle.Render(label)
	}
	return strings.Join([]string{
		flag(s.Shuffle, "shuffle"),
		flag(s.Repeat, "repeat"),
		flag(s.Liked, "♥"),
	}, "  ")
}

func renderEqualizer(s State) string {
	st := styles.T().S()
	eq := s.Equalizer
	text := fmt.Sprintf("bass %+.0fdB @ %s   treble %+.0fdB @ %s",
		eq.LowShelfGainDB, formatFreq(eq.LowShelfFreqHz),
		eq.HighShelfGainDB, formatFreq(eq.HighShelfFreqHz))
	if s.Track != "" && !s.EQActive && s.Status != playback.StateLoading {
		return st.Warning.Render(text + "  (bypassed)")
	}
	return st.Accent.Render(text)
}

func renderVolume(level float64) string {
	t := styles.T()
	return t.S().Muted.Render("vol ") +
		styles.Meter(level, volumeMeterWidth, t.Secondary, t.Primary) +
		t.S().Muted.Render(fmt.Sprintf(" %3d%%", int(level*100+0.5)))
}

func formatFreq(hz float64) string {
	if hz >= 1000 {
		return strconv.FormatFloat(hz/1000, 'f', -1, 64) + "kHz"
	}
	return strconv.FormatFloat(hz, 'f', 0, 64) + "Hz"
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
