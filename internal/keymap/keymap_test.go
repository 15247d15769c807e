package keymap

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contexts = []string{"global", "playback", "equalizer", "playlist"}

func TestByContext(t *testing.T) {
	for _, ctx := range contexts {
		t.Run(ctx, func(t *testing.T) {
			got := ByContext(ctx)
			require.NotEmpty(t, got)
			for _, b := range got {
				assert.Equal(t, ctx, b.Context, "action %s", b.Action)
			}
		})
	}

	assert.Empty(t, ByContext("unknown"))
	assert.Empty(t, ByContext(""))
}

func TestByContext_CoversEveryBinding(t *testing.T) {
	total := 0
	for _, ctx := range contexts {
		total += len(ByContext(ctx))
	}
	assert.Equal(t, len(Bindings), total, "a binding uses a context outside %v", contexts)
}

func TestActionsIn_SessionCommands(t *testing.T) {
	got := ActionsIn("playback")

	assert.Subset(t, got, []Action{
		ActionPlayPause, ActionStop, ActionNextTrack, ActionPrevTrack,
		ActionToggleShuffle, ActionToggleRepeat, ActionToggleLiked,
		ActionVolumeUp, ActionVolumeDown,
	})
	assert.Len(t, lo.Uniq(got), len(got))
}

func TestActionsIn_EqualizerCommands(t *testing.T) {
	assert.ElementsMatch(t, []Action{
		ActionLowGainUp, ActionLowGainDown, ActionHighGainUp, ActionHighGainDown,
		ActionLowFreqUp, ActionLowFreqDown, ActionHighFreqUp, ActionHighFreqDown,
		ActionCyclePreset,
	}, ActionsIn("equalizer"))
}

func TestBindings_Complete(t *testing.T) {
	for i, b := range Bindings {
		assert.NotEmpty(t, b.Action, "binding[%d]", i)
		assert.NotEmpty(t, b.Keys, "binding[%d] %s", i, b.Action)
		assert.NotEmpty(t, b.Description, "binding[%d] %s", i, b.Action)
	}
}

func TestBindings_KeysAreUnambiguous(t *testing.T) {
	owner := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if prev, ok := owner[k]; ok {
				assert.Equal(t, prev, b.Action, "key %q", k)
			}
			owner[k] = b.Action
		}
	}
}
