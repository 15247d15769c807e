package playlist

import "math/rand/v2"

// DefaultShuffleHistory is the history size used when none is configured.
const DefaultShuffleHistory = 16

// Navigator computes next and previous indices under sequential or shuffle
// policy. It owns the shuffle history; the cursor itself belongs to the caller.
type Navigator struct {
	history ShuffleHistory
	intn    func(n int) int
}

// NewNavigator creates a navigator keeping up to maxHistory shuffle entries.
func NewNavigator(maxHistory int) *Navigator {
	return &Navigator{
		history: NewShuffleHistory(maxHistory),
		intn:    rand.IntN,
	}
}

// WithRand replaces the random source. intn must return a value in [0, n).
func (n *Navigator) WithRand(intn func(n int) int) *Navigator {
	n.intn = intn
	return n
}

// History returns the current shuffle history.
func (n *Navigator) History() ShuffleHistory {
	return n.history
}

// ShuffleOn seeds the history with the current index.
func (n *Navigator) ShuffleOn(current int) {
	n.history = n.history.Seed(current)
}

// ShuffleOff clears the history.
func (n *Navigator) ShuffleOff() {
	n.history = n.history.Reset()
}

// Visit records an explicitly chosen index while shuffling.
func (n *Navigator) Visit(index, length int) {
	if front, ok := n.history.Front(); ok && front == index {
		return
	}
	n.history = n.history.Push(index, length)
}

// Next returns the index following current.
// Playlists with fewer than two tracks leave current unchanged.
func (n *Navigator) Next(current, length int, shuffle bool) int {
	if length <= 1 {
		return degenerate(current, length)
	}
	if !shuffle {
		return wrap(current+1, length)
	}
	return n.draw(length)
}

// Previous returns the index preceding current.
// While shuffling, it retraces the history when at least two entries are
// available and only draws a fresh index otherwise.
func (n *Navigator) Previous(current, length int, shuffle bool) int {
	if length <= 1 {
		return degenerate(current, length)
	}
	if !shuffle {
		return wrap(current-1, length)
	}

	for n.history.Len() >= 2 {
		n.history = n.history.Pop()
		if prev, _ := n.history.Front(); prev < length {
			return prev
		}
	}
	return n.draw(length)
}

// draw picks a random index outside the history window and records it.
// Terminates because the window is strictly smaller than length.
func (n *Navigator) draw(length int) int {
	for {
		idx := n.intn(length)
		if !n.history.InWindow(idx, length) {
			n.history = n.history.Push(idx, length)
			return idx
		}
	}
}

func wrap(index, length int) int {
	return ((index % length) + length) % length
}

func degenerate(current, length int) int {
	if current < 0 || current >= length {
		return 0
	}
	return current
}
