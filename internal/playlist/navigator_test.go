package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns a random source replaying values in order.
func scripted(t *testing.T, values ...int) func(int) int {
	t.Helper()
	i := 0
	return func(n int) int {
		require.Less(t, i, len(values), "random source exhausted")
		v := values[i]
		i++
		require.Less(t, v, n, "scripted value out of range")
		return v
	}
}

func TestNavigator_Sequential_Wraps(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory)

	cursor := 0
	var visited []int
	for range 3 {
		cursor = n.Next(cursor, 3, false)
		visited = append(visited, cursor)
	}

	assert.Equal(t, []int{1, 2, 0}, visited)
}

func TestNavigator_Sequential_PreviousWraps(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory)

	assert.Equal(t, 2, n.Previous(0, 3, false))
	assert.Equal(t, 0, n.Previous(1, 3, false))
}

func TestNavigator_Sequential_RoundTrip(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory)

	for length := 1; length <= 6; length++ {
		for start := range length {
			next := n.Next(start, length, false)
			back := n.Previous(next, length, false)
			assert.Equal(t, start, back, "length=%d start=%d", length, start)
		}
	}
}

func TestNavigator_Degenerate(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory).WithRand(func(int) int {
		t.Fatal("degenerate playlists must not draw")
		return 0
	})
	n.ShuffleOn(0)

	tests := []struct {
		name    string
		current int
		length  int
		shuffle bool
		want    int
	}{
		{"empty sequential", 0, 0, false, 0},
		{"empty shuffle", 0, 0, true, 0},
		{"single sequential", 0, 1, false, 0},
		{"single shuffle", 0, 1, true, 0},
		{"single stale cursor", 4, 1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Next(tt.current, tt.length, tt.shuffle))
			assert.Equal(t, tt.want, n.Previous(tt.current, tt.length, tt.shuffle))
		})
	}
	assert.Equal(t, []int{0}, n.History().Entries(), "history untouched")
}

func TestNavigator_Shuffle_RejectsCurrent(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory).WithRand(scripted(t, 2, 2, 0))
	n.ShuffleOn(2)

	got := n.Next(2, 3, true)

	assert.Equal(t, 0, got, "draws equal to the current index are rejected")
	assert.Equal(t, []int{0, 2}, n.History().Entries())
}

func TestNavigator_Shuffle_AvoidsWindow(t *testing.T) {
	// history capacity 2, playlist length 5
	n := NewNavigator(2).WithRand(scripted(t,
		1,       // 1st draw
		3,       // 2nd draw
		1, 4,    // 3rd draw: 1 still in window
		3, 4, 0, // 4th draw: 3 and 4 are the two most recent
	))

	assert.Equal(t, 1, n.Next(0, 5, true))
	assert.Equal(t, 3, n.Next(1, 5, true))
	assert.Equal(t, 4, n.Next(3, 5, true))
	assert.Equal(t, []int{4, 3}, n.History().Entries())

	assert.Equal(t, 0, n.Next(4, 5, true))
	assert.Equal(t, []int{0, 4}, n.History().Entries())
}

func TestNavigator_Shuffle_NoRepeatWithinWindow(t *testing.T) {
	for _, length := range []int{2, 3, 5, 8} {
		n := NewNavigator(4)
		n.ShuffleOn(0)
		window := min(4, length-1)

		var draws []int
		for range 200 {
			cur, _ := n.History().Front()
			draws = append(draws, n.Next(cur, length, true))
		}

		for i := range draws {
			for j := max(0, i-window+1); j < i; j++ {
				assert.NotEqual(t, draws[j], draws[i], "length=%d repeat within window at %d", length, i)
			}
		}
	}
}

func TestNavigator_Shuffle_PreviousRetracesHistory(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory).WithRand(scripted(t, 4, 2))
	n.ShuffleOn(0)

	assert.Equal(t, 4, n.Next(0, 6, true))
	assert.Equal(t, 2, n.Next(4, 6, true))

	assert.Equal(t, 4, n.Previous(2, 6, true))
	assert.Equal(t, 0, n.Previous(4, 6, true))
	assert.Equal(t, []int{0}, n.History().Entries())
}

func TestNavigator_Shuffle_PreviousDrawsWhenHistoryShort(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory).WithRand(scripted(t, 1, 3))
	n.ShuffleOn(1)

	got := n.Previous(1, 4, true)

	assert.Equal(t, 3, got)
	assert.Equal(t, []int{3, 1}, n.History().Entries())
}

func TestNavigator_Shuffle_PreviousSkipsStaleEntries(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory).WithRand(scripted(t, 1))
	n.history = NewShuffleHistory(DefaultShuffleHistory).Push(7, 10).Push(0, 10)

	// playlist shrank to 3 tracks, index 7 no longer exists
	got := n.Previous(0, 3, true)

	assert.Equal(t, 1, got)
}

func TestNavigator_ShuffleToggle(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory)

	n.ShuffleOn(3)
	assert.Equal(t, []int{3}, n.History().Entries())

	n.ShuffleOff()
	assert.Equal(t, 0, n.History().Len())
}

func TestNavigator_Visit(t *testing.T) {
	n := NewNavigator(DefaultShuffleHistory)
	n.ShuffleOn(0)

	n.Visit(2, 5)
	n.Visit(2, 5)

	assert.Equal(t, []int{2, 0}, n.History().Entries())
}
