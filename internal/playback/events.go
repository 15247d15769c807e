package playback

import "github.com/llehouerou/ferrous/internal/playlist"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a new resource is opened for a track, and
// when the current track is cleared by stop or failure (Current is empty).
//
// Replaying the same track under repeat does not emit TrackChange.
type TrackChange struct {
	Previous playlist.Track
	Current  playlist.Track
	Index    int // cursor after the change, -1 when the track is not in the playlist
}

// QueueChange is emitted when the playlist is replaced.
type QueueChange struct {
	Tracks []playlist.Track
	Index  int
}

// ModeChange is emitted when shuffle, repeat or liked toggles.
type ModeChange struct {
	Shuffle bool
	Repeat  bool
	Liked   bool
}

// ErrorEvent is emitted when loading or playing a track fails.
type ErrorEvent struct {
	Operation string // "load" or "play"
	Track     playlist.Track
	Err       error
}
