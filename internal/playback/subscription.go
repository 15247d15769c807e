package playback

// eventBuffer is the per-channel backlog a slow subscriber may accumulate
// before further events of that kind are dropped.
const eventBuffer = 16

// Subscription is one listener's view of session events. Every channel is
// buffered; Done closes when the session shuts down or the subscriber
// unsubscribes.
type Subscription struct {
	StateChanged <-chan StateChange
	TrackChanged <-chan TrackChange
	QueueChanged <-chan QueueChange
	ModeChanged  <-chan ModeChange
	Error        <-chan ErrorEvent
	Done         <-chan struct{}

	states chan StateChange
	tracks chan TrackChange
	queues chan QueueChange
	modes  chan ModeChange
	errs   chan ErrorEvent
	done   chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		states: make(chan StateChange, eventBuffer),
		tracks: make(chan TrackChange, eventBuffer),
		queues: make(chan QueueChange, eventBuffer),
		modes:  make(chan ModeChange, eventBuffer),
		errs:   make(chan ErrorEvent, eventBuffer),
		done:   make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged, s.QueueChanged = s.states, s.tracks, s.queues
	s.ModeChanged, s.Error, s.Done = s.modes, s.errs, s.done
	return s
}

func (s *Subscription) close() { close(s.done) }

func (s *Subscription) sendState(e StateChange) { offer(s.states, e) }
func (s *Subscription) sendTrack(e TrackChange) { offer(s.tracks, e) }
func (s *Subscription) sendQueue(e QueueChange) { offer(s.queues, e) }
func (s *Subscription) sendMode(e ModeChange)   { offer(s.modes, e) }
func (s *Subscription) sendError(e ErrorEvent)  { offer(s.errs, e) }

// offer delivers e without blocking the session loop. A full buffer drops
// the event; Snapshot always reflects the latest state.
func offer[T any](ch chan<- T, e T) {
	select {
	case ch <- e:
	default:
	}
}
