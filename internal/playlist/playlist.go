// Package playlist holds the library listing used for navigation and the
// queue navigator that picks the next or previous track.
package playlist

import "github.com/samber/lo"

// Track identifies one playable library file by name.
// Equality is exact string match.
type Track = string

// Playlist holds an ordered collection of tracks in server listing order.
// It is replaced wholesale on every library refresh.
type Playlist struct {
	tracks []Track
}

// New creates a playlist holding a copy of the given tracks.
func New(tracks ...Track) *Playlist {
	p := &Playlist{tracks: make([]Track, 0, len(tracks))}
	p.tracks = append(p.tracks, tracks...)
	return p
}

// Replace swaps the whole contents for a copy of tracks.
func (p *Playlist) Replace(tracks []Track) {
	p.tracks = append(make([]Track, 0, len(tracks)), tracks...)
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// At returns the track at the given index, or "" and false if out of bounds.
func (p *Playlist) At(index int) (Track, bool) {
	if index < 0 || index >= len(p.tracks) {
		return "", false
	}
	return p.tracks[index], true
}

// IndexOf returns the index of the first occurrence of track, or -1.
func (p *Playlist) IndexOf(track Track) int {
	return lo.IndexOf(p.tracks, track)
}

// Contains reports whether track is part of the playlist.
func (p *Playlist) Contains(track Track) bool {
	return lo.Contains(p.tracks, track)
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}
