package player

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// readTrackInfo reads tags from an in-memory track. Missing or unreadable
// tags fall back to the file name as title.
func readTrackInfo(track string, data []byte) *TrackInfo {
	info := &TrackInfo{
		Track: track,
		Title: strings.TrimSuffix(filepath.Base(track), filepath.Ext(track)),
		Size:  len(data),
	}

	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return info
	}

	if title := m.Title(); title != "" {
		info.Title = title
	}
	info.Artist = m.AlbumArtist()
	if m.Artist() != "" {
		info.Artist = m.Artist()
	}
	info.Album = m.Album()
	info.Year = m.Year()
	return info
}
