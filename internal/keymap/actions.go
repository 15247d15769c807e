// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionHelp           Action = "help"
	ActionRefreshLibrary Action = "refresh_library"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionStop          Action = "stop"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionToggleRepeat  Action = "toggle_repeat"
	ActionToggleLiked   Action = "toggle_liked"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"

	// Equalizer actions
	ActionLowGainUp    Action = "low_gain_up"
	ActionLowGainDown  Action = "low_gain_down"
	ActionHighGainUp   Action = "high_gain_up"
	ActionHighGainDown Action = "high_gain_down"
	ActionLowFreqUp    Action = "low_freq_up"
	ActionLowFreqDown  Action = "low_freq_down"
	ActionHighFreqUp   Action = "high_freq_up"
	ActionHighFreqDown Action = "high_freq_down"
	ActionCyclePreset  Action = "cycle_preset"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - play
)
