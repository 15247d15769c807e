// Package equalizer implements the two-band shelving equalizer spliced
// between a decoded track and the output stage.
package equalizer

import (
	"math"

	"github.com/samber/lo"
)

// Parameter bounds.
const (
	MinGainDB = -40.0
	MaxGainDB = 40.0

	MinLowShelfFreqHz = 20.0
	MaxLowShelfFreqHz = 1000.0

	MinHighShelfFreqHz = 2000.0
	MaxHighShelfFreqHz = 20000.0

	DefaultLowShelfFreqHz  = 250.0
	DefaultHighShelfFreqHz = 4000.0
)

// Settings holds the adjustable equalizer parameters.
type Settings struct {
	LowShelfGainDB  float64
	LowShelfFreqHz  float64
	HighShelfGainDB float64
	HighShelfFreqHz float64
}

// DefaultSettings returns a flat response with the default corner frequencies.
func DefaultSettings() Settings {
	return Settings{
		LowShelfFreqHz:  DefaultLowShelfFreqHz,
		HighShelfFreqHz: DefaultHighShelfFreqHz,
	}
}

// SetLowShelfGain sets the low-shelf gain, clamped to [MinGainDB, MaxGainDB].
// Like every setter, it ignores NaN and keeps the previous value.
func (s *Settings) SetLowShelfGain(db float64) {
	s.LowShelfGainDB = bound(s.LowShelfGainDB, db, MinGainDB, MaxGainDB)
}

// SetLowShelfFreq sets the low-shelf corner frequency.
func (s *Settings) SetLowShelfFreq(hz float64) {
	s.LowShelfFreqHz = bound(s.LowShelfFreqHz, hz, MinLowShelfFreqHz, MaxLowShelfFreqHz)
}

// SetHighShelfGain sets the high-shelf gain, clamped to [MinGainDB, MaxGainDB].
func (s *Settings) SetHighShelfGain(db float64) {
	s.HighShelfGainDB = bound(s.HighShelfGainDB, db, MinGainDB, MaxGainDB)
}

// SetHighShelfFreq sets the high-shelf corner frequency.
func (s *Settings) SetHighShelfFreq(hz float64) {
	s.HighShelfFreqHz = bound(s.HighShelfFreqHz, hz, MinHighShelfFreqHz, MaxHighShelfFreqHz)
}

// Clamped returns a copy with every field forced into range. NaN fields
// take their DefaultSettings value.
func (s Settings) Clamped() Settings {
	out := DefaultSettings()
	out.SetLowShelfGain(s.LowShelfGainDB)
	out.SetLowShelfFreq(s.LowShelfFreqHz)
	out.SetHighShelfGain(s.HighShelfGainDB)
	out.SetHighShelfFreq(s.HighShelfFreqHz)
	return out
}

// IsFlat reports whether both bands are at 0 dB.
func (s Settings) IsFlat() bool {
	return s.LowShelfGainDB == 0 && s.HighShelfGainDB == 0
}

// bound clamps v into [low, high], or returns prev when v is NaN.
func bound(prev, v, low, high float64) float64 {
	if math.IsNaN(v) {
		return prev
	}
	return lo.Clamp(v, low, high)
}
