package playback

import (
	"context"

	"github.com/llehouerou/ferrous/internal/equalizer"
	"github.com/llehouerou/ferrous/internal/player"
	"github.com/llehouerou/ferrous/internal/playlist"
)

// Service defines the playback service contract.
//
// Commands block until the session has applied them, but never wait for
// the audio backend: Play returns once loading has been requested.
type Service interface {
	// Playback control
	Play(track playlist.Track) error
	PlayPause() error
	Next() error
	Previous() error
	Stop() error

	// Modes
	ToggleShuffle() error
	ToggleRepeat() error
	ToggleLiked() error

	// Output
	SetVolume(level float64) error
	SetLowShelfGain(db float64) error
	SetLowShelfFreq(hz float64) error
	SetHighShelfGain(db float64) error
	SetHighShelfFreq(hz float64) error
	ApplyEqualizerPreset(name string) error

	// Playlist
	UpdatePlaylist(tracks []playlist.Track) error
	Refresh(ctx context.Context) error

	// State queries
	Snapshot() Snapshot

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Snapshot is a copy of the session state.
type Snapshot struct {
	CurrentTrack playlist.Track // empty when nothing is loaded
	State        State
	Shuffle      bool
	Repeat       bool
	Liked        bool
	Volume       float64
	Equalizer    equalizer.Settings
	// EqualizerActive is false while a resource plays without the filter
	// chain, either unloaded or in degraded passthrough mode.
	EqualizerActive bool
	Playlist        []playlist.Track
	Cursor          int
	Error           string // set in StateError
	Info            *player.TrackInfo
}

// HasTrack reports whether a track is current.
func (s Snapshot) HasTrack() bool {
	return s.CurrentTrack != ""
}
