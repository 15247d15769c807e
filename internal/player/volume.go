package player

import (
	"math"

	"github.com/samber/lo"
)

// ClampLevel forces a linear volume level into [0, 1]. NaN maps to 0.
func ClampLevel(level float64) float64 {
	if math.IsNaN(level) {
		return 0
	}
	return lo.Clamp(level, 0, 1)
}

// silentVolume is the effects.Volume exponent used for level 0. Streams at
// this level are also marked Silent.
const silentVolume = -10

// levelToVolume maps a linear level onto the base-2 exponent
// effects.Volume expects, where 0 is unity gain and each -1 halves it.
func levelToVolume(level float64) float64 {
	switch {
	case level <= 0, math.IsNaN(level):
		return silentVolume
	case level >= 1:
		return 0
	default:
		return max(math.Log2(level), silentVolume)
	}
}
