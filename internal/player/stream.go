package player

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"
)

const resampleQuality = 4

var (
	speakerMu    sync.Mutex
	speakerRate  beep.SampleRate
	speakerReady bool
)

// initSpeaker opens the output device once, at the rate of the first track.
// Later tracks are resampled to that rate.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerReady {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, errors.Wrap(err, "init speaker")
	}
	speakerRate = rate
	speakerReady = true
	return speakerRate, nil
}

// output is the device a finished graph plays on. Lock guards every
// mutation of a node that is already playing.
type output interface {
	Init(rate beep.SampleRate) (beep.SampleRate, error)
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate) (beep.SampleRate, error) { return initSpeaker(rate) }
func (speakerOutput) Play(s beep.Streamer)                               { speaker.Play(s) }
func (speakerOutput) Clear()                                             { speaker.Clear() }
func (speakerOutput) Lock()                                              { speaker.Lock() }
func (speakerOutput) Unlock()                                            { speaker.Unlock() }

// StreamBackend creates resources that fetch a whole track over HTTP,
// decode it in memory and play it on the speaker.
type StreamBackend struct {
	opener Opener
	out    output
	log    zerolog.Logger
}

// NewStreamBackend creates a backend reading tracks through opener.
func NewStreamBackend(opener Opener, log zerolog.Logger) *StreamBackend {
	return &StreamBackend{opener: opener, out: speakerOutput{}, log: log}
}

// NewResource implements Backend.
func (b *StreamBackend) NewResource(track string, emit func(Event)) Resource {
	ctx, cancel := context.WithCancel(context.Background())
	return &streamResource{
		track:  track,
		opener: b.opener,
		out:    b.out,
		emit:   emit,
		log:    b.log.With().Str("track", track).Logger(),
		ctx:    ctx,
		cancel: cancel,
		level:  1,
	}
}

// source lets Replay swap the resampler feeding the filter chain without
// touching anything downstream.
type source struct {
	s beep.Streamer
}

func (s *source) Stream(samples [][2]float64) (int, bool) { return s.s.Stream(samples) }
func (s *source) Err() error                              { return s.s.Err() }

// streamResource is one track on the speaker.
//
// Lock order: never take the output lock while holding mu. The
// end-of-track callback runs on the audio thread under the output lock and
// only reads the closed flag.
type streamResource struct {
	track  string
	opener Opener
	out    output
	emit   func(Event)
	log    zerolog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool

	mu       sync.Mutex
	level    float64
	filter   Filter
	streamer beep.StreamSeekCloser
	format   beep.Format
	rate     beep.SampleRate
	src      *source
	ctrl     *beep.Ctrl
	volume   *effects.Volume
}

func (r *streamResource) Track() string { return r.track }

func (r *streamResource) fire(ev Event) {
	if r.closed.Load() {
		return
	}
	r.emit(ev)
}

// Load fetches and decodes the track in the background.
func (r *streamResource) Load() {
	go func() {
		info, err := r.load()
		if err != nil {
			if r.ctx.Err() != nil {
				return
			}
			r.fire(Event{Kind: EventLoadError, Err: err})
			return
		}
		r.fire(Event{Kind: EventLoaded, Info: info})
	}()
}

func (r *streamResource) load() (*TrackInfo, error) {
	body, err := r.opener.Open(r.ctx, r.track)
	if err != nil {
		return nil, errors.Wrap(err, "fetch track")
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "read track")
	}

	streamer, format, name, err := decode(r.track, data)
	if err != nil {
		return nil, err
	}

	info := readTrackInfo(r.track, data)
	info.Format = name
	info.SampleRate = int(format.SampleRate)
	info.Duration = format.SampleRate.D(streamer.Len())

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed.Load() {
		streamer.Close()
		return nil, context.Canceled
	}
	r.streamer = streamer
	r.format = format

	r.log.Debug().
		Str("format", name).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Dur("duration", info.Duration).
		Msg("track loaded")
	return info, nil
}

// SetFilter must be called after loading and before the first Play.
func (r *streamResource) SetFilter(f Filter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.streamer == nil || r.ctrl != nil {
		return ErrFilterUnsupported
	}
	r.filter = f
	return nil
}

// Play starts the graph, or resumes it when paused.
func (r *streamResource) Play() {
	if r.closed.Load() {
		return
	}

	r.mu.Lock()
	if r.streamer == nil {
		r.mu.Unlock()
		r.fire(Event{Kind: EventPlayError, Err: errors.New("track not loaded")})
		return
	}
	if ctrl := r.ctrl; ctrl != nil {
		r.mu.Unlock()
		r.out.Lock()
		ctrl.Paused = false
		r.out.Unlock()
		r.fire(Event{Kind: EventStarted})
		return
	}

	rate, err := r.out.Init(r.format.SampleRate)
	if err != nil {
		r.mu.Unlock()
		r.fire(Event{Kind: EventPlayError, Err: err})
		return
	}
	graph := r.buildGraph(rate)
	r.mu.Unlock()

	r.out.Play(graph)
	r.fire(Event{Kind: EventStarted})
}

// buildGraph splices source -> filter -> ctrl -> volume at the output
// rate and returns the streamer to hand to the output. mu must be held.
func (r *streamResource) buildGraph(rate beep.SampleRate) beep.Streamer {
	r.rate = rate
	r.src = &source{s: r.resampled()}

	var node beep.Streamer = r.src
	if r.filter != nil {
		node = r.filter.Wrap(node, rate)
	}
	r.ctrl = &beep.Ctrl{Streamer: node}
	r.volume = &effects.Volume{
		Streamer: r.ctrl,
		Base:     2,
		Volume:   levelToVolume(r.level),
		Silent:   r.level <= 0,
	}
	return r.sequence()
}

// sequence appends the end-of-track callback to the volume stage.
func (r *streamResource) sequence() beep.Streamer {
	return beep.Seq(r.volume, beep.Callback(r.finished))
}

// resampled must be called with mu held.
func (r *streamResource) resampled() beep.Streamer {
	if r.format.SampleRate == r.rate {
		return r.streamer
	}
	return beep.Resample(resampleQuality, r.format.SampleRate, r.rate, r.streamer)
}

// finished runs on the audio thread.
func (r *streamResource) finished() {
	r.fire(Event{Kind: EventEnded})
}

// Pause pauses output; the graph stays alive.
func (r *streamResource) Pause() {
	r.mu.Lock()
	ctrl := r.ctrl
	r.mu.Unlock()
	if ctrl == nil || r.closed.Load() {
		return
	}
	r.out.Lock()
	ctrl.Paused = true
	r.out.Unlock()
	r.fire(Event{Kind: EventPaused})
}

// Replay rewinds the same graph to the start and plays it again.
func (r *streamResource) Replay() {
	if r.closed.Load() {
		return
	}
	r.mu.Lock()
	streamer, src, ctrl := r.streamer, r.src, r.ctrl
	r.mu.Unlock()
	if streamer == nil || ctrl == nil {
		r.Play()
		return
	}

	r.out.Lock()
	err := streamer.Seek(0)
	var graph beep.Streamer
	if err == nil {
		r.mu.Lock()
		src.s = r.resampled()
		graph = r.sequence()
		r.mu.Unlock()
		ctrl.Paused = false
	}
	r.out.Unlock()
	if err != nil {
		r.fire(Event{Kind: EventPlayError, Err: errors.Wrap(err, "rewind")})
		return
	}

	r.out.Play(graph)
	r.fire(Event{Kind: EventStarted})
}

// Stop releases the resource. No event is emitted afterwards.
func (r *streamResource) Stop() {
	if r.closed.Swap(true) {
		return
	}
	r.cancel()

	r.mu.Lock()
	streamer, ctrl := r.streamer, r.ctrl
	r.streamer, r.src, r.ctrl, r.volume = nil, nil, nil, nil
	r.mu.Unlock()

	if ctrl != nil {
		r.out.Clear()
	}
	if streamer != nil {
		streamer.Close()
	}
}

// SetVolume applies a linear level in [0, 1] to the live output.
func (r *streamResource) SetVolume(level float64) {
	level = ClampLevel(level)

	r.mu.Lock()
	r.level = level
	vol := r.volume
	r.mu.Unlock()
	if vol == nil {
		return
	}

	r.out.Lock()
	vol.Volume = levelToVolume(level)
	vol.Silent = level <= 0
	r.out.Unlock()
}
