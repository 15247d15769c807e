package player

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

const mp3FrameBytes = 4 // stereo, 16-bit

var _ beep.StreamSeekCloser = (*mp3Stream)(nil)

// mp3Stream adapts llehouerou/go-mp3 to beep. Seeking is sample accurate,
// which Replay relies on.
type mp3Stream struct {
	dec    *mp3.Decoder
	closer io.Closer
	buf    []byte
	err    error
}

func decodeMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{dec: dec, closer: rc}, format, nil
}

// Stream implements beep.Streamer.
func (s *mp3Stream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}

	need := len(samples) * mp3FrameBytes
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	read, err := io.ReadFull(s.dec, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	n = read / mp3FrameBytes
	for i := range n {
		frame := buf[i*mp3FrameBytes:]
		samples[i][0] = float64(int16(binary.LittleEndian.Uint16(frame[0:]))) / 32768  //nolint:gosec // audio samples
		samples[i][1] = float64(int16(binary.LittleEndian.Uint16(frame[2:]))) / 32768 //nolint:gosec // audio samples
	}
	return n, n > 0
}

// Err implements beep.Streamer.
func (s *mp3Stream) Err() error { return s.err }

// Len implements beep.StreamSeeker.
func (s *mp3Stream) Len() int {
	return max(int(s.dec.SampleCount()), 0)
}

// Position implements beep.StreamSeeker.
func (s *mp3Stream) Position() int {
	return int(s.dec.SamplePosition())
}

// Seek implements beep.StreamSeeker.
func (s *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

// Close implements beep.StreamSeekCloser.
func (s *mp3Stream) Close() error {
	return s.closer.Close()
}
