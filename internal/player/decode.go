package player

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extOGA  = ".oga"
	extWAV  = ".wav"
)

// IsPlayable reports whether a library file has a decoder.
func IsPlayable(track string) bool {
	switch strings.ToLower(filepath.Ext(track)) {
	case extMP3, extFLAC, extOGG, extOGA, extWAV:
		return true
	}
	return false
}

// memFile is an in-memory track body. Decoders see a seekable reader, so
// the decoded stream supports Seek.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// decode picks a decoder by the track's extension.
func decode(track string, data []byte) (beep.StreamSeekCloser, beep.Format, string, error) {
	f := memFile{bytes.NewReader(data)}
	ext := strings.ToLower(filepath.Ext(track))

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
		name     string
	)
	switch ext {
	case extMP3:
		name = "MP3"
		streamer, format, err = decodeMP3(f)
	case extFLAC:
		name = "FLAC"
		// Some taggers prepend ID3v2 to FLAC files
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, name, errors.Wrap(err, "skip id3v2")
		}
		streamer, format, err = flac.Decode(f)
	case extOGG, extOGA:
		name = "VORBIS"
		streamer, format, err = vorbis.Decode(f)
	case extWAV:
		name = "WAV"
		streamer, format, err = wav.Decode(f)
	default:
		return nil, beep.Format{}, "", errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return nil, beep.Format{}, name, errors.Wrapf(err, "decode %s", name)
	}
	return streamer, format, name, nil
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of r.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
