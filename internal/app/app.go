// Package app is the bubbletea model of the terminal front-end.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ferrous/internal/keymap"
	"github.com/llehouerou/ferrous/internal/playback"
	"github.com/llehouerou/ferrous/internal/ui/playlistview"
)

const (
	volumeStep   = 0.05
	gainStepDB   = 1.0
	lowFreqStep  = 10.0
	highFreqStep = 250.0

	defaultRefreshTimeout = 10 * time.Second
)

// Model is the root bubbletea model. It renders session snapshots and
// forwards key actions to the session.
type Model struct {
	Width  int
	Height int

	service        playback.Service
	sub            *playback.Subscription
	keys           *keymap.Resolver
	log            zerolog.Logger
	playlist       playlistview.Model
	snap           playback.Snapshot
	status         string
	statusErr      bool
	showHelp       bool
	presetIdx      int
	refreshTimeout time.Duration
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithRefreshTimeout bounds each library refresh.
func WithRefreshTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.refreshTimeout = d
		}
	}
}

// New creates the model and subscribes to session events.
func New(service playback.Service, opts ...Option) Model {
	m := Model{
		service:        service,
		sub:            service.Subscribe(),
		keys:           keymap.NewResolver(keymap.Bindings),
		log:            zerolog.Nop(),
		playlist:       playlistview.New(),
		presetIdx:      -1,
		refreshTimeout: defaultRefreshTimeout,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.sync()
	return m
}

// Init starts listening for session events and fetches the playlist.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchServiceEvents(), RefreshCmd(m.service, m.refreshTimeout))
}

// sync copies the session state into the view.
func (m *Model) sync() {
	m.snap = m.service.Snapshot()
	m.playlist.SetTracks(m.snap.Playlist)
	playing := -1
	if m.snap.HasTrack() {
		playing = m.snap.Cursor
	}
	m.playlist.SetPlaying(playing)
}

func (m *Model) resize() {
	listHeight := max(m.Height-statusHeight-playerBarHeight(), 0)
	m.playlist.SetSize(m.Width, listHeight)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}
