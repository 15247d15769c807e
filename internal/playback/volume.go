package playback

import (
	"math"

	"github.com/llehouerou/ferrous/internal/player"
)

// DefaultVolume is the level used when none is configured.
const DefaultVolume = 0.5

// Volume stores the output level. It is owned by the session and carried
// from one resource to the next.
type Volume struct {
	level float64
}

// NewVolume creates a controller at level, clamped to [0, 1]. NaN starts
// at DefaultVolume.
func NewVolume(level float64) *Volume {
	v := &Volume{level: DefaultVolume}
	v.Set(level)
	return v
}

// Level returns the current level.
func (v *Volume) Level() float64 {
	return v.level
}

// Set clamps and stores level, returning the stored value. NaN leaves the
// level unchanged.
func (v *Volume) Set(level float64) float64 {
	if !math.IsNaN(level) {
		v.level = player.ClampLevel(level)
	}
	return v.level
}

// Apply pushes the level into r. A nil resource is ignored.
func (v *Volume) Apply(r player.Resource) {
	if r == nil {
		return
	}
	r.SetVolume(v.level)
}
