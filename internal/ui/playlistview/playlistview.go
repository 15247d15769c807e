// Package playlistview renders the server playlist as a scrollable list
// with the playing track highlighted.
package playlistview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ferrous/internal/playlist"
	"github.com/llehouerou/ferrous/internal/ui/render"
	"github.com/llehouerou/ferrous/internal/ui/styles"
)

const (
	playingSymbol = "▶"

	// scrollMargin is the number of rows kept visible around the cursor.
	scrollMargin = 3

	// overhead is border plus header plus separator.
	overhead = 4
)

// Model is the playlist panel.
type Model struct {
	tracks  []playlist.Track
	playing int // index of the current track, -1 if none
	pos     int
	offset  int
	width   int
	height  int
}

// New creates an empty panel.
func New() Model {
	return Model{playing: -1}
}

// SetSize sets the panel dimensions, borders included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetTracks replaces the listed tracks. The cursor stays on the same track
// when it is still listed.
func (m *Model) SetTracks(tracks []playlist.Track) {
	var selected playlist.Track
	if m.pos < len(m.tracks) {
		selected = m.tracks[m.pos]
	}
	m.tracks = tracks
	m.pos = 0
	for i, t := range tracks {
		if t == selected {
			m.pos = i
			break
		}
	}
	m.ensureVisible()
}

// SetPlaying marks the track at index as playing.
func (m *Model) SetPlaying(index int) {
	m.playing = index
}

// Len returns the number of listed tracks.
func (m Model) Len() int {
	return len(m.tracks)
}

// Pos returns the cursor position.
func (m Model) Pos() int {
	return m.pos
}

// Selected returns the track under the cursor.
func (m Model) Selected() (playlist.Track, bool) {
	if m.pos < 0 || m.pos >= len(m.tracks) {
		return "", false
	}
	return m.tracks[m.pos], true
}

// Move moves the cursor by delta rows, clamped to the list.
func (m *Model) Move(delta int) {
	m.Jump(m.pos + delta)
}

// Jump moves the cursor to index, clamped to the list.
func (m *Model) Jump(index int) {
	if len(m.tracks) == 0 {
		return
	}
	m.pos = min(max(index, 0), len(m.tracks)-1)
	m.ensureVisible()
}

// JumpEnd moves the cursor to the last track.
func (m *Model) JumpEnd() {
	m.Jump(len(m.tracks) - 1)
}

// HalfPage returns the number of rows a half-page scroll moves.
func (m Model) HalfPage() int {
	return max(m.listHeight()/2, 1)
}

func (m Model) listHeight() int {
	return max(m.height-overhead, 0)
}

func (m *Model) ensureVisible() {
	height := m.listHeight()
	if height <= 0 || len(m.tracks) == 0 {
		m.offset = 0
		return
	}
	margin := min(scrollMargin, (height-1)/2)

	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	if m.pos >= m.offset+height-margin {
		m.offset = m.pos - height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.tracks)-height, 0))
}

// View renders the panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := max(m.width-2, 0)
	st := styles.T().S()

	header := st.Title.Render(render.Fit(m.headerText(), innerWidth))
	lines := []string{header, render.Separator(innerWidth)}

	for i := range m.listHeight() {
		idx := i + m.offset
		if idx >= len(m.tracks) {
			lines = append(lines, strings.Repeat(" ", innerWidth))
			continue
		}
		lines = append(lines, m.renderLine(idx, innerWidth))
	}

	return st.Panel.Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) headerText() string {
	if len(m.tracks) == 0 {
		return "Playlist (empty)"
	}
	return fmt.Sprintf("Playlist (%d/%d)", m.playing+1, len(m.tracks))
}

func (m Model) renderLine(idx, width int) string {
	prefix := "  "
	if idx == m.playing {
		prefix = playingSymbol + " "
	}
	line := prefix + render.Fit(m.tracks[idx], width-2)
	return m.lineStyle(idx).Render(line)
}

func (m Model) lineStyle(idx int) lipgloss.Style {
	st := styles.T().S()
	isCursor := idx == m.pos
	isPlaying := idx == m.playing

	switch {
	case isCursor && isPlaying:
		return st.Cursor.Inherit(st.Playing)
	case isCursor:
		return st.Cursor
	case isPlaying:
		return st.Playing
	default:
		return st.Base
	}
}
