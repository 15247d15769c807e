package playback

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ferrous/internal/equalizer"
	"github.com/llehouerou/ferrous/internal/library"
	"github.com/llehouerou/ferrous/internal/player"
	"github.com/llehouerou/ferrous/internal/playlist"
)

// Verify Session implements Service at compile time.
var _ Service = (*Session)(nil)

// Lister fetches the library listing.
type Lister interface {
	List(ctx context.Context) (*library.Listing, error)
}

// Option configures a Session.
type Option func(*options)

type options struct {
	log         zerolog.Logger
	historySize int
	volume      float64
	eq          equalizer.Settings
	shuffle     bool
	repeat      bool
	library     Lister
	intn        func(int) int
}

// WithLogger sets the session logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithShuffleHistory sets the maximum shuffle history size.
func WithShuffleHistory(n int) Option {
	return func(o *options) { o.historySize = n }
}

// WithVolume sets the initial volume.
func WithVolume(level float64) Option {
	return func(o *options) { o.volume = level }
}

// WithEqualizer sets the initial equalizer settings.
func WithEqualizer(s equalizer.Settings) Option {
	return func(o *options) { o.eq = s }
}

// WithShuffle sets the initial shuffle mode.
func WithShuffle(on bool) Option {
	return func(o *options) { o.shuffle = on }
}

// WithRepeat sets the initial repeat mode.
func WithRepeat(on bool) Option {
	return func(o *options) { o.repeat = on }
}

// WithLibrary sets the source used by Refresh.
func WithLibrary(l Lister) Option {
	return func(o *options) { o.library = l }
}

// WithRand replaces the shuffle random source.
func WithRand(intn func(int) int) Option {
	return func(o *options) { o.intn = intn }
}

// Session owns the single live audio resource and all playback state.
//
// One goroutine runs every state change. Commands and resource callbacks
// are queued as tasks and run in order; commands wait for their task,
// callbacks never wait. Each resource is tagged with a generation and
// callbacks from earlier generations are dropped.
type Session struct {
	log     zerolog.Logger
	backend player.Backend
	library Lister

	// Owned by the loop goroutine.
	playlist *playlist.Playlist
	nav      *playlist.Navigator
	volume   *Volume
	eq       equalizer.Settings
	chain    *equalizer.Chain
	res      player.Resource
	gen      uint64
	state    State
	current  playlist.Track
	cursor   int
	shuffle  bool
	repeat   bool
	liked    bool
	errMsg   string
	info     *player.TrackInfo

	qmu     sync.Mutex
	tasks   []func()
	closing bool
	wake    chan struct{}
	done    chan struct{}
	exited  chan struct{}

	closeOnce sync.Once
	final     Snapshot

	subs   []*Subscription
	subsMu sync.RWMutex
}

// New creates a session and starts its loop. Call Close to stop it.
func New(backend player.Backend, opts ...Option) *Session {
	o := options{
		log:         zerolog.Nop(),
		historySize: playlist.DefaultShuffleHistory,
		volume:      DefaultVolume,
		eq:          equalizer.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	nav := playlist.NewNavigator(o.historySize)
	if o.intn != nil {
		nav.WithRand(o.intn)
	}

	s := &Session{
		log:      o.log.With().Str("session", uuid.NewString()).Logger(),
		backend:  backend,
		library:  o.library,
		playlist: playlist.New(),
		nav:      nav,
		volume:   NewVolume(o.volume),
		eq:       o.eq.Clamped(),
		state:    StateIdle,
		shuffle:  o.shuffle,
		repeat:   o.repeat,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	if s.shuffle {
		s.nav.ShuffleOn(0)
	}

	go s.run()
	return s
}

func (s *Session) run() {
	defer close(s.exited)
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}
		for {
			task, ok := s.dequeue()
			if !ok {
				break
			}
			task()
		}
	}
}

func (s *Session) dequeue() (func(), bool) {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	if len(s.tasks) == 0 {
		return nil, false
	}
	task := s.tasks[0]
	s.tasks[0] = nil
	s.tasks = s.tasks[1:]
	return task, true
}

// post queues a task without waiting. It reports false after Close.
func (s *Session) post(task func()) bool {
	s.qmu.Lock()
	if s.closing {
		s.qmu.Unlock()
		return false
	}
	s.tasks = append(s.tasks, task)
	s.qmu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

// do queues fn and waits for it. Must not be called from the loop.
func (s *Session) do(fn func() error) error {
	errCh := make(chan error, 1)
	if !s.post(func() { errCh <- fn() }) {
		return ErrClosed
	}
	select {
	case err := <-errCh:
		return err
	case <-s.done:
		select {
		case err := <-errCh:
			return err
		default:
			return ErrClosed
		}
	}
}

// emitter returns the callback handed to the resource of generation gen.
func (s *Session) emitter(gen uint64) func(player.Event) {
	return func(ev player.Event) {
		s.post(func() { s.handleEvent(gen, ev) })
	}
}

// Snapshot returns a copy of the current state. After Close it returns
// the state at the time of closing.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	if err := s.do(func() error {
		snap = s.snapshot()
		return nil
	}); err != nil {
		return s.final
	}
	return snap
}

func (s *Session) snapshot() Snapshot {
	var info *player.TrackInfo
	if s.info != nil {
		c := *s.info
		info = &c
	}
	cursor := -1
	if !s.playlist.IsEmpty() {
		cursor = s.resolveCursor()
	}
	return Snapshot{
		CurrentTrack:    s.current,
		State:           s.state,
		Shuffle:         s.shuffle,
		Repeat:          s.repeat,
		Liked:           s.liked,
		Volume:          s.volume.Level(),
		Equalizer:       s.eq,
		EqualizerActive: s.chain != nil,
		Playlist:        s.playlist.Tracks(),
		Cursor:          cursor,
		Error:           s.errMsg,
		Info:            info,
	}
}

// Subscribe creates a new event subscription.
func (s *Session) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	select {
	case <-s.done:
		sub.close()
		return sub
	default:
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops the live resource and shuts the loop down.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		_ = s.do(func() error {
			s.release()
			s.final = s.snapshot()

			// Drop commands queued behind Close; their callers get ErrClosed.
			s.qmu.Lock()
			s.closing = true
			s.tasks = nil
			s.qmu.Unlock()
			return nil
		})

		s.subsMu.Lock()
		close(s.done)
		for _, sub := range s.subs {
			sub.close()
		}
		s.subs = nil
		s.subsMu.Unlock()

		<-s.exited
		s.log.Debug().Msg("session closed")
	})
	return nil
}
