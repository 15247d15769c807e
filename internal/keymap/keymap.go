// Package keymap defines key bindings for the application.
package keymap

import "github.com/samber/lo"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "equalizer", "playlist"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionRefreshLibrary, []string{"ctrl+r"}, "Refresh library", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", "playback"},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", "playback"},
	{ActionToggleRepeat, []string{"R"}, "Toggle repeat", "playback"},
	{ActionToggleLiked, []string{"L"}, "Like current track", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},

	// Equalizer
	{ActionLowGainUp, []string{"b"}, "Bass gain +1 dB", "equalizer"},
	{ActionLowGainDown, []string{"B"}, "Bass gain -1 dB", "equalizer"},
	{ActionHighGainUp, []string{"t"}, "Treble gain +1 dB", "equalizer"},
	{ActionHighGainDown, []string{"T"}, "Treble gain -1 dB", "equalizer"},
	{ActionLowFreqUp, []string{"]"}, "Bass corner frequency up", "equalizer"},
	{ActionLowFreqDown, []string{"["}, "Bass corner frequency down", "equalizer"},
	{ActionHighFreqUp, []string{"}"}, "Treble corner frequency up", "equalizer"},
	{ActionHighFreqDown, []string{"{"}, "Treble corner frequency down", "equalizer"},
	{ActionCyclePreset, []string{"e"}, "Next equalizer preset", "equalizer"},

	// Playlist
	{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "playlist"},
	{ActionPageUp, []string{"ctrl+u"}, "Page up", "playlist"},
	{ActionPageDown, []string{"ctrl+d"}, "Page down", "playlist"},
	{ActionSelect, []string{"enter"}, "Play track", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	return lo.Filter(Bindings, func(b Binding, _ int) bool {
		return b.Context == context
	})
}

// ActionsIn returns the distinct actions bound in context, in binding order.
func ActionsIn(context string) []Action {
	return lo.Uniq(lo.Map(ByContext(context), func(b Binding, _ int) Action {
		return b.Action
	}))
}
