package equalizer

import "strings"

// Preset is a named pair of shelf gains. Corner frequencies are left to the
// user's settings.
type Preset struct {
	Name            string
	LowShelfGainDB  float64
	HighShelfGainDB float64
}

// Internal copy of the bundled presets. Values are simple well-known shapes.
var defaultPresets = []Preset{
	{Name: "Flat"},
	{Name: "Bass Boost", LowShelfGainDB: 6},
	{Name: "Treble Boost", HighShelfGainDB: 6},
	{Name: "Loudness", LowShelfGainDB: 4, HighShelfGainDB: 3},
	{Name: "Vocal", LowShelfGainDB: -3, HighShelfGainDB: -2},
}

// Presets returns a copy of the bundled presets.
func Presets() []Preset {
	out := make([]Preset, len(defaultPresets))
	copy(out, defaultPresets)
	return out
}

// FindPreset performs a case-insensitive lookup across bundled presets.
func FindPreset(name string) (Preset, bool) {
	for _, p := range defaultPresets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// ApplyTo returns s with the preset's gains.
func (p Preset) ApplyTo(s Settings) Settings {
	s.SetLowShelfGain(p.LowShelfGainDB)
	s.SetHighShelfGain(p.HighShelfGainDB)
	return s
}
