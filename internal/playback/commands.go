package playback

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/ferrous/internal/equalizer"
	"github.com/llehouerou/ferrous/internal/playlist"
)

// Play stops any live resource and starts loading track. The track does
// not have to be in the playlist.
func (s *Session) Play(track playlist.Track) error {
	if track == "" {
		return ErrEmptyTrack
	}
	return s.do(func() error {
		if idx := s.playlist.IndexOf(track); idx >= 0 {
			s.cursor = idx
			if s.shuffle {
				s.nav.Visit(idx, s.playlist.Len())
			}
		}
		s.play(track)
		return nil
	})
}

// PlayPause pauses a playing resource or resumes a paused one. The state
// follows the resource callback. Without a resource it does nothing.
func (s *Session) PlayPause() error {
	return s.do(func() error {
		if s.res == nil {
			return nil
		}
		switch s.state {
		case StatePlaying:
			s.res.Pause()
		case StatePaused:
			s.res.Play()
		default:
		}
		return nil
	})
}

// Next plays the following track. It returns ErrNavigationNoop for
// playlists with fewer than two tracks.
func (s *Session) Next() error {
	return s.do(func() error { return s.navigate(true) })
}

// Previous plays the preceding track, retracing shuffle history when
// available. It returns ErrNavigationNoop for playlists with fewer than two
// tracks.
func (s *Session) Previous() error {
	return s.do(func() error { return s.navigate(false) })
}

// Stop releases the resource and clears the current track.
func (s *Session) Stop() error {
	return s.do(func() error {
		s.stop()
		return nil
	})
}

// ToggleShuffle flips shuffle mode. The cursor is kept.
func (s *Session) ToggleShuffle() error {
	return s.do(func() error {
		s.shuffle = !s.shuffle
		if s.shuffle {
			s.nav.ShuffleOn(s.resolveCursor())
		} else {
			s.nav.ShuffleOff()
		}
		s.log.Debug().Bool("shuffle", s.shuffle).Msg("shuffle toggled")
		s.publishMode()
		return nil
	})
}

// ToggleRepeat flips repeat mode.
func (s *Session) ToggleRepeat() error {
	return s.do(func() error {
		s.repeat = !s.repeat
		s.publishMode()
		return nil
	})
}

// ToggleLiked flips the liked flag of the current track. It resets on the
// next track change.
func (s *Session) ToggleLiked() error {
	return s.do(func() error {
		if s.current == "" {
			return nil
		}
		s.liked = !s.liked
		s.publishMode()
		return nil
	})
}

// SetVolume clamps level to [0, 1] and applies it to the live resource.
// The level carries over to every later resource.
func (s *Session) SetVolume(level float64) error {
	return s.do(func() error {
		s.volume.Set(level)
		s.volume.Apply(s.res)
		return nil
	})
}

// SetLowShelfGain sets the low shelf gain in dB.
func (s *Session) SetLowShelfGain(db float64) error {
	return s.tuneEqualizer(func(eq *equalizer.Settings) { eq.SetLowShelfGain(db) })
}

// SetLowShelfFreq sets the low shelf corner frequency in Hz.
func (s *Session) SetLowShelfFreq(hz float64) error {
	return s.tuneEqualizer(func(eq *equalizer.Settings) { eq.SetLowShelfFreq(hz) })
}

// SetHighShelfGain sets the high shelf gain in dB.
func (s *Session) SetHighShelfGain(db float64) error {
	return s.tuneEqualizer(func(eq *equalizer.Settings) { eq.SetHighShelfGain(db) })
}

// SetHighShelfFreq sets the high shelf corner frequency in Hz.
func (s *Session) SetHighShelfFreq(hz float64) error {
	return s.tuneEqualizer(func(eq *equalizer.Settings) { eq.SetHighShelfFreq(hz) })
}

// ApplyEqualizerPreset sets both shelf gains from a named preset.
func (s *Session) ApplyEqualizerPreset(name string) error {
	p, ok := equalizer.FindPreset(name)
	if !ok {
		return errors.Newf("unknown equalizer preset %q", name)
	}
	return s.tuneEqualizer(func(eq *equalizer.Settings) { *eq = p.ApplyTo(*eq) })
}

// tuneEqualizer edits the settings and pushes them into the live chain
// without rebuilding it.
func (s *Session) tuneEqualizer(edit func(*equalizer.Settings)) error {
	return s.do(func() error {
		edit(&s.eq)
		if s.chain != nil {
			s.chain.Apply(s.eq)
		}
		return nil
	})
}

// UpdatePlaylist replaces the playlist. Playback of the current track
// continues even if it is no longer listed.
func (s *Session) UpdatePlaylist(tracks []playlist.Track) error {
	return s.do(func() error {
		s.playlist.Replace(tracks)
		s.cursor = s.resolveCursor()
		if s.shuffle {
			s.nav.ShuffleOn(s.cursor)
		}
		s.log.Debug().Int("tracks", s.playlist.Len()).Msg("playlist updated")
		s.publishQueue()
		return nil
	})
}

// Refresh fetches the library listing and replaces the playlist with it.
// Fetch errors are returned and not retried.
func (s *Session) Refresh(ctx context.Context) error {
	if s.library == nil {
		return ErrNoLibrary
	}
	listing, err := s.library.List(ctx)
	if err != nil {
		return errors.Wrap(err, "refresh playlist")
	}
	s.log.Info().
		Str("library_dir", listing.LibraryDir).
		Int("tracks", len(listing.Files)).
		Msg("library listed")
	return s.UpdatePlaylist(listing.Files)
}
