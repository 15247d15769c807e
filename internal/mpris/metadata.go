//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/ferrous/internal/playback"
)

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying, playback.StateLoading:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

// metadata describes the current track. Tags fill in once it has loaded.
func metadata(snap playback.Snapshot) types.Metadata {
	if !snap.HasTrack() {
		return types.Metadata{}
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(snap.CurrentTrack)),
		Title:   snap.CurrentTrack,
	}
	if info := snap.Info; info != nil {
		meta.Length = types.Microseconds(info.Duration.Microseconds())
		if info.Title != "" {
			meta.Title = info.Title
		}
		if info.Artist != "" {
			meta.Artist = []string{info.Artist}
		}
		meta.Album = info.Album
	}
	return meta
}

func formatTrackID(track string) string {
	h := fnv.New64a()
	h.Write([]byte(track))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

// ignoreNoop hides navigation requests that cannot move, which media keys
// send freely.
func ignoreNoop(err error) error {
	if errors.Is(err, playback.ErrNavigationNoop) {
		return nil
	}
	return err
}
