package playlist

// ShuffleHistory is a bounded, most-recent-first record of indices chosen
// while shuffling. An index never appears twice.
//
// The effective capacity depends on the playlist length:
// min(maxSize, length-1), so the rejection window is always strictly
// smaller than the set of candidates.
type ShuffleHistory struct {
	entries []int
	maxSize int
}

// NewShuffleHistory creates an empty history holding at most maxSize entries.
func NewShuffleHistory(maxSize int) ShuffleHistory {
	return ShuffleHistory{maxSize: max(maxSize, 0)}
}

// Capacity returns the usable size of the history for a playlist of length.
func (h ShuffleHistory) Capacity(length int) int {
	return max(min(h.maxSize, length-1), 0)
}

// Len returns the number of stored entries.
func (h ShuffleHistory) Len() int {
	return len(h.entries)
}

// Front returns the most recent entry.
func (h ShuffleHistory) Front() (int, bool) {
	if len(h.entries) == 0 {
		return 0, false
	}
	return h.entries[0], true
}

// Entries returns a copy of the entries, most recent first.
func (h ShuffleHistory) Entries() []int {
	result := make([]int, len(h.entries))
	copy(result, h.entries)
	return result
}

// Window returns the entries that currently block a shuffle draw.
func (h ShuffleHistory) Window(length int) []int {
	n := min(h.Capacity(length), len(h.entries))
	return h.entries[:n]
}

// InWindow reports whether index is blocked for a playlist of length.
func (h ShuffleHistory) InWindow(index, length int) bool {
	for _, e := range h.Window(length) {
		if e == index {
			return true
		}
	}
	return false
}

// Push returns a history with index at the front, any older occurrence
// removed, truncated to the capacity for length.
func (h ShuffleHistory) Push(index, length int) ShuffleHistory {
	capacity := h.Capacity(length)
	if capacity == 0 {
		return ShuffleHistory{maxSize: h.maxSize}
	}

	entries := make([]int, 0, capacity)
	entries = append(entries, index)
	for _, e := range h.entries {
		if len(entries) == capacity {
			break
		}
		if e != index {
			entries = append(entries, e)
		}
	}
	return ShuffleHistory{entries: entries, maxSize: h.maxSize}
}

// Pop returns a history without its most recent entry.
func (h ShuffleHistory) Pop() ShuffleHistory {
	if len(h.entries) == 0 {
		return h
	}
	entries := make([]int, len(h.entries)-1)
	copy(entries, h.entries[1:])
	return ShuffleHistory{entries: entries, maxSize: h.maxSize}
}

// Reset returns an empty history with the same maximum size.
func (h ShuffleHistory) Reset() ShuffleHistory {
	return ShuffleHistory{maxSize: h.maxSize}
}

// Seed returns a history holding only index, ignoring the playlist length.
// Used when shuffle is switched on so the current track is never drawn next.
func (h ShuffleHistory) Seed(index int) ShuffleHistory {
	if h.maxSize == 0 {
		return h.Reset()
	}
	return ShuffleHistory{entries: []int{index}, maxSize: h.maxSize}
}
