package player

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeWAV builds a 16-bit stereo PCM file with the given number of frames.
func makeWAV(t *testing.T, rate uint32, frames int) []byte {
	t.Helper()
	var buf bytes.Buffer
	dataSize := uint32(frames * 4)
	w := func(v any) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	buf.WriteString("RIFF")
	w(36 + dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(2))
	w(rate)
	w(rate * 4)
	w(uint16(4))
	w(uint16(16))
	buf.WriteString("data")
	w(dataSize)
	for i := range frames {
		v := int16(i % 1000)
		w(v)
		w(-v)
	}
	return buf.Bytes()
}

func TestIsPlayable(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"a/b/song.flac", true},
		{"song.ogg", true},
		{"song.oga", true},
		{"song.wav", true},
		{"song.opus", false},
		{"song.m4a", false},
		{"cover.jpg", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlayable(tt.path))
		})
	}
}

func TestDecode_WAV(t *testing.T) {
	data := makeWAV(t, 44100, 4410)

	s, format, name, err := decode("dir/tone.wav", data)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "WAV", name)
	assert.Equal(t, 44100, int(format.SampleRate))
	assert.Equal(t, 2, format.NumChannels)
	assert.Equal(t, 4410, s.Len())

	samples := make([][2]float64, 512)
	n, ok := s.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 512, n)

	require.NoError(t, s.Seek(0))
	assert.Equal(t, 0, s.Position())
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, _, _, err := decode("song.opus", []byte("OggS"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_CorruptData(t *testing.T) {
	_, _, name, err := decode("broken.wav", []byte("not a wave file"))
	require.Error(t, err)
	assert.Equal(t, "WAV", name)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSkipID3v2(t *testing.T) {
	t.Run("with tag", func(t *testing.T) {
		// ID3v2 header with a 20-byte syncsafe size, then the payload
		tag := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 20}
		tag = append(tag, make([]byte, 20)...)
		r := bytes.NewReader(append(tag, []byte("fLaC")...))

		require.NoError(t, skipID3v2(r))
		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "fLaC", string(rest))
	})

	t.Run("without tag", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC and more"))

		require.NoError(t, skipID3v2(r))
		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "fLaC and more", string(rest))
	})
}

func TestReadTrackInfo_FallsBackToFileName(t *testing.T) {
	data := makeWAV(t, 22050, 10)

	info := readTrackInfo("Artist/Album/01 - Intro.wav", data)
	assert.Equal(t, "Artist/Album/01 - Intro.wav", info.Track)
	assert.Equal(t, "01 - Intro", info.Title)
	assert.Equal(t, len(data), info.Size)
	assert.Empty(t, info.Artist)
}

func TestLevelToVolume(t *testing.T) {
	assert.InDelta(t, 0, levelToVolume(1), 1e-9)
	assert.InDelta(t, -1, levelToVolume(0.5), 1e-9)
	assert.InDelta(t, -2, levelToVolume(0.25), 1e-9)
	assert.InDelta(t, -10, levelToVolume(0), 1e-9)
	assert.InDelta(t, -10, levelToVolume(-3), 1e-9)
	assert.InDelta(t, 0, levelToVolume(7), 1e-9)
}

func TestClampLevel(t *testing.T) {
	assert.InDelta(t, 0.0, ClampLevel(-0.5), 1e-9)
	assert.InDelta(t, 0.3, ClampLevel(0.3), 1e-9)
	assert.InDelta(t, 1.0, ClampLevel(1.5), 1e-9)
	assert.Zero(t, ClampLevel(math.NaN()))
	assert.InDelta(t, -10, levelToVolume(math.NaN()), 1e-9)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "loaded", EventLoaded.String())
	assert.Equal(t, "ended", EventEnded.String())
	assert.Equal(t, "play_error", EventPlayError.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}

type fakeOpener struct {
	data  []byte
	err   error
	block chan struct{}
}

func (o *fakeOpener) Open(ctx context.Context, _ string) (io.ReadCloser, error) {
	if o.block != nil {
		select {
		case <-o.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	return io.NopCloser(bytes.NewReader(o.data)), nil
}

func collect() (func(Event), <-chan Event) {
	ch := make(chan Event, 8)
	return func(ev Event) { ch <- ev }, ch
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestStreamResource_Load(t *testing.T) {
	backend := NewStreamBackend(&fakeOpener{data: makeWAV(t, 44100, 44100)}, testLogger())
	emit, events := collect()

	r := backend.NewResource("Album/track.wav", emit)
	assert.Equal(t, "Album/track.wav", r.Track())
	assert.ErrorIs(t, r.SetFilter(nil), ErrFilterUnsupported, "filter before load")

	r.Load()
	ev := waitEvent(t, events)
	require.Equal(t, EventLoaded, ev.Kind)
	require.NotNil(t, ev.Info)
	assert.Equal(t, "WAV", ev.Info.Format)
	assert.Equal(t, 44100, ev.Info.SampleRate)
	assert.Equal(t, time.Second, ev.Info.Duration)
	assert.Equal(t, "track", ev.Info.Title)

	assert.NoError(t, r.SetFilter(nil))
	r.Stop()
}

func TestStreamResource_LoadError(t *testing.T) {
	backend := NewStreamBackend(&fakeOpener{err: errors.New("boom")}, testLogger())
	emit, events := collect()

	r := backend.NewResource("x.mp3", emit)
	r.Load()
	ev := waitEvent(t, events)
	assert.Equal(t, EventLoadError, ev.Kind)
	assert.ErrorContains(t, ev.Err, "boom")
	r.Stop()
}

func TestStreamResource_StopSuppressesLoad(t *testing.T) {
	opener := &fakeOpener{data: makeWAV(t, 44100, 10), block: make(chan struct{})}
	backend := NewStreamBackend(opener, testLogger())
	emit, events := collect()

	r := backend.NewResource("x.wav", emit)
	r.Load()
	r.Stop()
	close(opener.block)

	select {
	case ev := <-events:
		t.Fatalf("unexpected event after stop: %v", ev.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}
