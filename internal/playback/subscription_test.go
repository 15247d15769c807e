package playback

import (
	"errors"
	"testing"
)

func TestSubscription_DeliversEachKind(t *testing.T) {
	sub := newSubscription()

	sub.sendState(StateChange{Previous: StateIdle, Current: StateLoading})
	sub.sendTrack(TrackChange{Current: "a.mp3", Index: 1})
	sub.sendQueue(QueueChange{Index: 2, Tracks: []string{"queue.mp3"}})
	sub.sendMode(ModeChange{Repeat: true, Shuffle: true})
	sub.sendError(ErrorEvent{Operation: "load", Track: "x.mp3", Err: errors.New("boom")})

	if e := <-sub.StateChanged; e.Current != StateLoading {
		t.Errorf("StateChanged.Current = %v, want Loading", e.Current)
	}
	if tr := <-sub.TrackChanged; tr.Index != 1 || tr.Current != "a.mp3" {
		t.Errorf("TrackChanged = %+v, want a.mp3 at 1", tr)
	}
	if q := <-sub.QueueChanged; q.Index != 2 || len(q.Tracks) != 1 {
		t.Errorf("QueueChanged = %+v, want [queue.mp3] at 2", q)
	}
	if m := <-sub.ModeChanged; !m.Repeat || !m.Shuffle {
		t.Errorf("ModeChanged = %+v, want repeat and shuffle", m)
	}
	if er := <-sub.Error; er.Track != "x.mp3" || er.Operation != "load" {
		t.Errorf("Error = %+v, want load x.mp3", er)
	}
}

func TestSubscription_CloseEndsDone(t *testing.T) {
	sub := newSubscription()
	sub.close()

	select {
	case <-sub.Done:
	default:
		t.Fatal("Done still open after close")
	}
}

func TestSubscription_FullBufferDrops(t *testing.T) {
	sub := newSubscription()

	for i := range eventBuffer * 2 {
		sub.sendTrack(TrackChange{Index: i})
	}

	if got := len(sub.TrackChanged); got != eventBuffer {
		t.Fatalf("buffered %d events, want %d", got, eventBuffer)
	}
	// The oldest events survive; the overflow is discarded.
	for i := range eventBuffer {
		if e := <-sub.TrackChanged; e.Index != i {
			t.Fatalf("event %d has index %d", i, e.Index)
		}
	}
}

func TestOffer_NilChannelDoesNotBlock(t *testing.T) {
	var ch chan int
	offer(ch, 1)
}
