package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/ferrous/internal/keymap"
	"github.com/llehouerou/ferrous/internal/ui/playerbar"
	"github.com/llehouerou/ferrous/internal/ui/render"
	"github.com/llehouerou/ferrous/internal/ui/styles"
)

const statusHeight = 1

var helpContexts = []string{"playback", "equalizer", "playlist", "global"}

func playerBarHeight() int {
	return playerbar.Height
}

// View renders the playlist, the player bar and the status line.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}

	var body string
	if m.showHelp {
		body = m.renderHelp()
	} else {
		body = m.playlist.View()
	}

	bar := playerbar.Render(playerbar.NewState(m.snap), m.Width)
	return body + "\n" + bar + "\n" + m.renderStatus()
}

func (m Model) renderStatus() string {
	st := styles.T().S()
	text := render.Fit(m.status, m.Width)
	if m.statusErr {
		return st.Error.Render(text)
	}
	return st.Muted.Render(text)
}

// renderHelp lists the key bindings, one section per context.
func (m Model) renderHelp() string {
	st := styles.T().S()
	innerWidth := max(m.Width-2, 0)

	var lines []string
	for _, ctx := range helpContexts {
		lines = append(lines, st.Title.Render(render.Fit(strings.ToUpper(ctx[:1])+ctx[1:], innerWidth)))
		for _, action := range keymap.ActionsIn(ctx) {
			keys := strings.Join(displayKeys(m.keys.KeysFor(action)), ", ")
			lines = append(lines, render.Fit(fmt.Sprintf("  %-16s %s", keys, m.keys.Describe(action)), innerWidth))
		}
	}

	height := max(m.Height-statusHeight-playerBarHeight()-2, 0)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", innerWidth))
	}
	return st.Panel.Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func displayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
