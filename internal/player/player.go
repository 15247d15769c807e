// Package player provides the audio resources driven by the playback session.
//
// A Resource plays exactly one track. It reports progress through an emit
// callback instead of return values: loading and starting are asynchronous,
// and the end of a track is noticed on the audio thread.
package player

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
)

var (
	// ErrFilterUnsupported is returned by SetFilter when the resource cannot
	// splice a filter into its graph. Playback continues without it.
	ErrFilterUnsupported = errors.New("filter graph not supported for this resource")
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// EventKind identifies a resource callback.
type EventKind int

const (
	EventLoaded EventKind = iota
	EventStarted
	EventPaused
	EventEnded
	EventLoadError
	EventPlayError
)

// String returns the event name for logging.
func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventEnded:
		return "ended"
	case EventLoadError:
		return "load_error"
	case EventPlayError:
		return "play_error"
	default:
		return "unknown"
	}
}

// Event is delivered by a Resource through its emit callback.
type Event struct {
	Kind EventKind
	Info *TrackInfo // set on EventLoaded
	Err  error      // set on EventLoadError and EventPlayError
}

// TrackInfo describes a loaded track.
type TrackInfo struct {
	Track      string
	Title      string
	Artist     string
	Album      string
	Year       int
	Format     string
	SampleRate int
	Size       int
	Duration   time.Duration
}

// Filter is spliced between the decoded source and the output stage.
type Filter interface {
	Wrap(src beep.Streamer, sampleRate beep.SampleRate) beep.Streamer
}

// Resource is one live audio resource bound to a single track.
//
// Load, Play, Pause and Replay return immediately; their outcome arrives
// as an Event. Stop is synchronous: once it returns the resource holds no
// audio output and emits nothing further.
type Resource interface {
	Track() string
	Load()
	Play()
	Pause()
	Replay()
	Stop()
	SetVolume(level float64)
	SetFilter(f Filter) error
}

// Backend creates resources.
type Backend interface {
	NewResource(track string, emit func(Event)) Resource
}

// Opener streams the bytes of a library track.
type Opener interface {
	Open(ctx context.Context, track string) (io.ReadCloser, error)
}

// Verify implementations at compile time.
var (
	_ Resource = (*streamResource)(nil)
	_ Backend  = (*StreamBackend)(nil)
)
