//go:build linux

package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ferrous/internal/playback"
)

const busName = "ferrous"

// Adapter exposes a playback session as org.mpris.MediaPlayer2.ferrous.
type Adapter struct {
	server *server.Server
}

// New registers the session on the session bus. The bus loop runs until
// Close; if it ends early the reason is logged and media keys stop working.
func New(service playback.Service, log zerolog.Logger) (*Adapter, error) {
	srv := server.NewServer(busName, identity{}, &remote{service})
	go func() {
		if err := srv.Listen(); err != nil {
			log.Warn().Err(err).Str("bus", busName).Msg("mpris server stopped")
		}
	}()
	return &Adapter{server: srv}, nil
}

// Close releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// identity answers the root org.mpris.MediaPlayer2 interface. The player
// has no window and owns its lifecycle, so Raise and Quit do nothing.
type identity struct{}

func (identity) Raise() error                { return nil }
func (identity) Quit() error                 { return nil }
func (identity) CanQuit() (bool, error)      { return false, nil }
func (identity) CanRaise() (bool, error)     { return false, nil }
func (identity) HasTrackList() (bool, error) { return false, nil }
func (identity) Identity() (string, error)   { return "Ferrous", nil }

func (identity) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

//nolint:revive // name fixed by the MPRIS interface
func (identity) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

// remote maps org.mpris.MediaPlayer2.Player calls onto the session. Property
// reads take a Snapshot, which waits for the session loop like any command.
type remote struct {
	service playback.Service
}

func (r *remote) Next() error     { return ignoreNoop(r.service.Next()) }
func (r *remote) Previous() error { return ignoreNoop(r.service.Previous()) }
func (r *remote) Stop() error     { return r.service.Stop() }

func (r *remote) Pause() error {
	if r.service.Snapshot().State == playback.StatePlaying {
		return r.service.PlayPause()
	}
	return nil
}

func (r *remote) PlayPause() error {
	if r.service.Snapshot().HasTrack() {
		return r.service.PlayPause()
	}
	return r.Play()
}

// Play resumes a paused track. With nothing loaded it starts the track
// under the playlist cursor.
func (r *remote) Play() error {
	snap := r.service.Snapshot()
	if snap.State == playback.StatePaused {
		return r.service.PlayPause()
	}
	if snap.HasTrack() || snap.Cursor < 0 || snap.Cursor >= len(snap.Playlist) {
		return nil
	}
	return r.service.Play(snap.Playlist[snap.Cursor])
}

// Tracks stream without seeking, so position and rate are fixed.

func (r *remote) Seek(types.Microseconds) error                { return nil }
func (r *remote) SetPosition(string, types.Microseconds) error { return nil }
func (r *remote) Position() (int64, error)                     { return 0, nil }
func (r *remote) Rate() (float64, error)                       { return 1, nil }
func (r *remote) SetRate(float64) error                        { return nil }
func (r *remote) MinimumRate() (float64, error)                { return 1, nil }
func (r *remote) MaximumRate() (float64, error)                { return 1, nil }
func (r *remote) CanSeek() (bool, error)                       { return false, nil }
func (r *remote) CanPause() (bool, error)                      { return true, nil }
func (r *remote) CanControl() (bool, error)                    { return true, nil }

//nolint:revive // name fixed by the MPRIS interface
func (r *remote) OpenUri(string) error { return nil }

func (r *remote) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(r.service.Snapshot().State), nil
}

func (r *remote) Metadata() (types.Metadata, error) {
	return metadata(r.service.Snapshot()), nil
}

func (r *remote) Volume() (float64, error)      { return r.service.Snapshot().Volume, nil }
func (r *remote) SetVolume(level float64) error { return r.service.SetVolume(level) }

func (r *remote) CanGoNext() (bool, error)     { return len(r.service.Snapshot().Playlist) > 1, nil }
func (r *remote) CanGoPrevious() (bool, error) { return len(r.service.Snapshot().Playlist) > 1, nil }

func (r *remote) CanPlay() (bool, error) {
	snap := r.service.Snapshot()
	return snap.HasTrack() || len(snap.Playlist) > 0, nil
}

// LoopStatus reports Track while repeat is on, since repeat replays the
// current track. Playlist loops are not a session mode.
func (r *remote) LoopStatus() (types.LoopStatus, error) {
	if r.service.Snapshot().Repeat {
		return types.LoopStatusTrack, nil
	}
	return types.LoopStatusNone, nil
}

func (r *remote) SetLoopStatus(status types.LoopStatus) error {
	if r.service.Snapshot().Repeat == (status != types.LoopStatusNone) {
		return nil
	}
	return r.service.ToggleRepeat()
}

func (r *remote) Shuffle() (bool, error) { return r.service.Snapshot().Shuffle, nil }

func (r *remote) SetShuffle(on bool) error {
	if r.service.Snapshot().Shuffle == on {
		return nil
	}
	return r.service.ToggleShuffle()
}
