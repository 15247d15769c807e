// internal/player/mock.go
package player

import "sync"

// MockBackend is a test double for Backend. Every resource it creates is
// recorded so tests can drive its callbacks.
type MockBackend struct {
	mu        sync.Mutex
	resources []*MockResource

	// Auto makes resources answer Load with EventLoaded and Play or Replay
	// with EventStarted synchronously.
	Auto bool
	// FilterErr is returned from SetFilter by new resources.
	FilterErr error
	// LoadErr makes Auto resources fail to load.
	LoadErr error
}

// NewMockBackend creates a backend in Auto mode.
func NewMockBackend() *MockBackend {
	return &MockBackend{Auto: true}
}

// NewResource implements Backend.
func (b *MockBackend) NewResource(track string, emit func(Event)) Resource {
	b.mu.Lock()
	defer b.mu.Unlock()
	r := &MockResource{
		track:     track,
		emit:      emit,
		auto:      b.Auto,
		filterErr: b.FilterErr,
		loadErr:   b.LoadErr,
		volume:    -1,
	}
	b.resources = append(b.resources, r)
	return r
}

// Resources returns every resource created so far, oldest first.
func (b *MockBackend) Resources() []*MockResource {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*MockResource, len(b.resources))
	copy(out, b.resources)
	return out
}

// Last returns the most recently created resource, or nil.
func (b *MockBackend) Last() *MockResource {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.resources) == 0 {
		return nil
	}
	return b.resources[len(b.resources)-1]
}

// MockResource is a test double for Resource.
type MockResource struct {
	track     string
	emit      func(Event)
	auto      bool
	filterErr error
	loadErr   error

	mu      sync.Mutex
	calls   []string
	volume  float64
	filter  Filter
	replays int
	stopped bool
	started bool
}

func (m *MockResource) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *MockResource) Track() string { return m.track }

func (m *MockResource) Load() {
	m.record("load")
	if !m.auto {
		return
	}
	if m.loadErr != nil {
		m.Fire(Event{Kind: EventLoadError, Err: m.loadErr})
		return
	}
	m.Fire(Event{Kind: EventLoaded, Info: &TrackInfo{Track: m.track, Title: m.track}})
}

func (m *MockResource) Play() {
	m.record("play")
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
	if m.auto {
		m.Fire(Event{Kind: EventStarted})
	}
}

func (m *MockResource) Pause() {
	m.record("pause")
	if m.auto {
		m.Fire(Event{Kind: EventPaused})
	}
}

func (m *MockResource) Replay() {
	m.record("replay")
	m.mu.Lock()
	m.replays++
	m.mu.Unlock()
	if m.auto {
		m.Fire(Event{Kind: EventStarted})
	}
}

func (m *MockResource) Stop() {
	m.record("stop")
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *MockResource) SetVolume(level float64) {
	m.mu.Lock()
	m.volume = level
	m.mu.Unlock()
}

func (m *MockResource) SetFilter(f Filter) error {
	m.record("filter")
	if m.filterErr != nil {
		return m.filterErr
	}
	m.mu.Lock()
	m.filter = f
	m.mu.Unlock()
	return nil
}

// Fire delivers ev as if the backend produced it. Events after Stop are
// dropped, like a real resource.
func (m *MockResource) Fire(ev Event) {
	m.mu.Lock()
	stopped := m.stopped
	m.mu.Unlock()
	if stopped {
		return
	}
	m.emit(ev)
}

// FireStale delivers ev even after Stop, simulating a late callback.
func (m *MockResource) FireStale(ev Event) {
	m.emit(ev)
}

// Calls returns the recorded method calls.
func (m *MockResource) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Volume returns the last level passed to SetVolume, or -1.
func (m *MockResource) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// Filter returns the installed filter.
func (m *MockResource) Filter() Filter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

// Replays returns how many times Replay was called.
func (m *MockResource) Replays() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.replays
}

// Stopped reports whether Stop was called.
func (m *MockResource) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Started reports whether Play was called.
func (m *MockResource) Started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

var (
	_ Resource = (*MockResource)(nil)
	_ Backend  = (*MockBackend)(nil)
)
