package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_DefaultBindings(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"n", ActionNextTrack},
		{"pgup", ActionPrevTrack},
		{"S", ActionToggleShuffle},
		{"b", ActionLowGainUp},
		{"B", ActionLowGainDown},
		{"e", ActionCyclePreset},
		{"enter", ActionSelect},
		{"x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.key))
		})
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionStop, []string{"s"}, "Stop", "playback"},
		{ActionToggleShuffle, []string{"s"}, "Shuffle", "playback"},
	})

	assert.Equal(t, ActionToggleShuffle, r.Resolve("s"))
}

func TestResolver_KeysForMergesContexts(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
		{ActionMoveUp, []string{"up", "ctrl+p"}, "Cursor up", "global"},
	})

	assert.Equal(t, []string{"k", "up", "ctrl+p"}, r.KeysFor(ActionMoveUp))
	assert.Equal(t, "Move up", r.Describe(ActionMoveUp))
	assert.Empty(t, r.KeysFor(ActionQuit))
	assert.Empty(t, r.Describe(ActionQuit))
}

func TestResolver_KeysForReturnsCopy(t *testing.T) {
	r := NewResolver([]Binding{{ActionStop, []string{"s"}, "Stop", "playback"}})

	keys := r.KeysFor(ActionStop)
	keys[0] = "z"

	assert.Equal(t, []string{"s"}, r.KeysFor(ActionStop))
}
