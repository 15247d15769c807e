package playback

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/ferrous/internal/playlist"
)

var (
	// ErrNavigationNoop is returned by Next and Previous when the playlist
	// has fewer than two tracks. Nothing changes.
	ErrNavigationNoop = errors.New("navigation needs at least two tracks")
	// ErrEmptyTrack is returned by Play for an empty track name.
	ErrEmptyTrack = errors.New("empty track")
	// ErrNoLibrary is returned by Refresh when no library is configured.
	ErrNoLibrary = errors.WithHint(
		errors.New("no library configured"),
		"set server.url in the config or pass --server",
	)
	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("playback session closed")
)

// LoadError reports a track that could not be fetched or decoded.
type LoadError struct {
	Track playlist.Track
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Track, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PlayError reports a decoded track that could not start playback.
type PlayError struct {
	Track playlist.Track
	Err   error
}

func (e *PlayError) Error() string {
	return fmt.Sprintf("play %s: %v", e.Track, e.Err)
}

func (e *PlayError) Unwrap() error { return e.Err }
