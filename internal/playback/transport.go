package playback

import (
	"github.com/llehouerou/ferrous/internal/equalizer"
	"github.com/llehouerou/ferrous/internal/player"
	"github.com/llehouerou/ferrous/internal/playlist"
)

// Everything in this file runs on the loop goroutine.

// play tears down the live resource, then opens and loads a new one.
func (s *Session) play(track playlist.Track) {
	if s.state == StateStopped || s.state == StateError {
		s.setState(triggerReset)
	}
	s.release()

	prev, wasLiked := s.current, s.liked
	s.gen++
	s.current = track
	s.liked = false
	s.errMsg = ""
	s.info = nil

	s.res = s.backend.NewResource(track, s.emitter(s.gen))
	s.volume.Apply(s.res)
	s.setState(triggerLoad)

	s.log.Debug().Str("track", track).Uint64("generation", s.gen).Msg("loading track")
	s.publishTrack(prev)
	if wasLiked {
		s.publishMode()
	}
	s.res.Load()
}

// release stops and drops the live resource and its filter chain.
func (s *Session) release() {
	if s.res == nil {
		return
	}
	s.res.Stop()
	s.res = nil
	s.chain = nil
}

func (s *Session) stop() {
	prev := s.current
	s.release()
	s.current = ""
	s.liked = false
	s.errMsg = ""
	s.info = nil
	s.setState(triggerStop)
	if prev != "" {
		s.publishTrack(prev)
	}
}

// resolveCursor re-reads the current track's position in the playlist,
// falling back to the stored cursor and then to 0.
func (s *Session) resolveCursor() int {
	if s.current != "" {
		if idx := s.playlist.IndexOf(s.current); idx >= 0 {
			return idx
		}
	}
	if s.cursor >= 0 && s.cursor < s.playlist.Len() {
		return s.cursor
	}
	return 0
}

func (s *Session) navigate(forward bool) error {
	n := s.playlist.Len()
	if n < 2 {
		return ErrNavigationNoop
	}

	cur := s.resolveCursor()
	var idx int
	if forward {
		idx = s.nav.Next(cur, n, s.shuffle)
	} else {
		idx = s.nav.Previous(cur, n, s.shuffle)
	}
	track, _ := s.playlist.At(idx)
	s.cursor = idx
	s.play(track)
	return nil
}

func (s *Session) handleEvent(gen uint64, ev player.Event) {
	if gen != s.gen || s.res == nil {
		s.log.Debug().
			Uint64("generation", gen).
			Uint64("current", s.gen).
			Stringer("event", ev.Kind).
			Msg("dropping stale callback")
		return
	}

	switch ev.Kind {
	case player.EventLoaded:
		s.onLoaded(ev.Info)
	case player.EventStarted:
		s.setState(triggerStarted)
	case player.EventPaused:
		s.setState(triggerPaused)
	case player.EventEnded:
		s.onEnded(gen)
	case player.EventLoadError:
		s.fail("load", &LoadError{Track: s.current, Err: ev.Err})
	case player.EventPlayError:
		s.fail("play", &PlayError{Track: s.current, Err: ev.Err})
	}
}

// onLoaded binds a fresh equalizer chain to the resource and starts it.
func (s *Session) onLoaded(info *player.TrackInfo) {
	if s.state != StateLoading {
		return
	}
	s.info = info

	chain := equalizer.NewChain(s.eq)
	if err := s.res.SetFilter(chain); err != nil {
		s.log.Warn().Err(err).Str("track", s.current).Msg("equalizer disabled for track")
		s.chain = nil
	} else {
		s.chain = chain
	}
	s.res.Play()
}

// onEnded replays the same resource under repeat. Otherwise the advance
// is queued as a new task so consecutive tracks never nest.
func (s *Session) onEnded(gen uint64) {
	if s.repeat {
		s.res.Replay()
		return
	}
	s.post(func() { s.advance(gen) })
}

func (s *Session) advance(gen uint64) {
	if gen != s.gen || s.res == nil {
		return
	}
	if err := s.navigate(true); err != nil {
		s.log.Debug().Msg("end of playlist")
		s.stop()
	}
}

// fail releases the resource and parks the session in StateError. Nothing
// is retried.
func (s *Session) fail(op string, err error) {
	track := s.current
	s.release()
	s.current = ""
	s.liked = false
	s.info = nil
	s.errMsg = err.Error()
	s.setState(triggerFail)

	s.log.Error().Err(err).Str("track", track).Str("op", op).Msg("playback failed")
	s.publishTrack(track)
	s.publishError(ErrorEvent{Operation: op, Track: track, Err: err})
}

func (s *Session) setState(t trigger) {
	next, ok := transition(s.state, t)
	if !ok {
		s.log.Warn().Stringer("state", s.state).Stringer("trigger", t).Msg("invalid transition ignored")
		return
	}
	if next == s.state {
		return
	}
	prev := s.state
	s.state = next
	s.broadcast(func(sub *Subscription) {
		sub.sendState(StateChange{Previous: prev, Current: next})
	})
}

func (s *Session) publishTrack(prev playlist.Track) {
	e := TrackChange{Previous: prev, Current: s.current, Index: -1}
	if s.current != "" {
		e.Index = s.playlist.IndexOf(s.current)
	}
	s.broadcast(func(sub *Subscription) { sub.sendTrack(e) })
}

func (s *Session) publishMode() {
	e := ModeChange{Shuffle: s.shuffle, Repeat: s.repeat, Liked: s.liked}
	s.broadcast(func(sub *Subscription) { sub.sendMode(e) })
}

func (s *Session) publishQueue() {
	tracks := s.playlist.Tracks()
	cursor := s.cursor
	s.broadcast(func(sub *Subscription) {
		sub.sendQueue(QueueChange{Tracks: tracks, Index: cursor})
	})
}

func (s *Session) publishError(e ErrorEvent) {
	s.broadcast(func(sub *Subscription) { sub.sendError(e) })
}

func (s *Session) broadcast(send func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		send(sub)
	}
}
