package equalizer

import (
	"math"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// constStreamer produces a fixed number of samples of the same value.
type constStreamer struct {
	remaining int
	value     float64
}

func (s *constStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	n = min(len(samples), s.remaining)
	for i := range n {
		samples[i] = [2]float64{s.value, s.value}
	}
	s.remaining -= n
	return n, true
}

func (s *constStreamer) Err() error { return nil }

// drain streams everything and returns the last sample of the left channel.
func drain(t *testing.T, s beep.Streamer) float64 {
	t.Helper()
	buf := make([][2]float64, 512)
	last := 0.0
	for {
		n, ok := s.Stream(buf)
		if n > 0 {
			last = buf[n-1][0]
		}
		if !ok {
			return last
		}
	}
}

func dbToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

func TestSettings_Clamping(t *testing.T) {
	s := DefaultSettings()

	s.SetLowShelfGain(100)
	s.SetHighShelfGain(-100)
	s.SetLowShelfFreq(5)
	s.SetHighShelfFreq(50000)

	assert.Equal(t, MaxGainDB, s.LowShelfGainDB)
	assert.Equal(t, MinGainDB, s.HighShelfGainDB)
	assert.Equal(t, MinLowShelfFreqHz, s.LowShelfFreqHz)
	assert.Equal(t, MaxHighShelfFreqHz, s.HighShelfFreqHz)
}

func TestSettings_InRangeValuesKept(t *testing.T) {
	s := DefaultSettings()

	s.SetLowShelfGain(-3.5)
	s.SetLowShelfFreq(120)
	s.SetHighShelfGain(2)
	s.SetHighShelfFreq(8000)

	assert.Equal(t, Settings{
		LowShelfGainDB:  -3.5,
		LowShelfFreqHz:  120,
		HighShelfGainDB: 2,
		HighShelfFreqHz: 8000,
	}, s)
	assert.False(t, s.IsFlat())
	assert.True(t, DefaultSettings().IsFlat())
}

func TestChain_FlatIsTransparent(t *testing.T) {
	c := NewChain(DefaultSettings())
	src := &constStreamer{remaining: 2048, value: 0.25}

	buf := make([][2]float64, 2048)
	n, ok := c.Wrap(src, testRate).Stream(buf)

	require.True(t, ok)
	require.Equal(t, 2048, n)
	for i := range n {
		assert.InDelta(t, 0.25, buf[i][0], 1e-9)
		assert.InDelta(t, 0.25, buf[i][1], 1e-9)
	}
}

func TestChain_LowShelfBoostsDC(t *testing.T) {
	s := DefaultSettings()
	s.SetLowShelfGain(6)
	c := NewChain(s)

	out := drain(t, c.Wrap(&constStreamer{remaining: 44100, value: 0.1}, testRate))

	assert.InDelta(t, 0.1*dbToLinear(6), out, 1e-3)
}

func TestChain_HighShelfLeavesDC(t *testing.T) {
	s := DefaultSettings()
	s.SetHighShelfGain(12)
	c := NewChain(s)

	out := drain(t, c.Wrap(&constStreamer{remaining: 44100, value: 0.1}, testRate))

	assert.InDelta(t, 0.1, out, 1e-3)
}

func TestChain_HighShelfBoostsNyquist(t *testing.T) {
	s := DefaultSettings()
	s.SetHighShelfGain(6)
	c := NewChain(s)

	// alternating signal sits at Nyquist
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.1
			if i%2 == 1 {
				v = -0.1
			}
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
	wrapped := c.Wrap(src, testRate)

	buf := make([][2]float64, 4096)
	for range 10 {
		wrapped.Stream(buf)
	}

	assert.InDelta(t, 0.1*dbToLinear(6), math.Abs(buf[len(buf)-1][0]), 1e-3)
}

func TestChain_ApplyUpdatesLiveStages(t *testing.T) {
	c := NewChain(DefaultSettings())
	src := &constStreamer{remaining: 88200, value: 0.1}
	wrapped := c.Wrap(src, testRate)

	buf := make([][2]float64, 1024)
	wrapped.Stream(buf)
	assert.InDelta(t, 0.1, buf[len(buf)-1][0], 1e-6)

	s := c.Settings()
	s.SetLowShelfGain(-6)
	c.Apply(s)

	out := drain(t, wrapped)
	assert.InDelta(t, 0.1*dbToLinear(-6), out, 1e-3)
	assert.True(t, c.Bound())
}

func TestChain_UnboundKeepsSettings(t *testing.T) {
	c := NewChain(DefaultSettings())

	s := DefaultSettings()
	s.SetHighShelfGain(3)
	c.Apply(s)

	assert.False(t, c.Bound())
	assert.Equal(t, 3.0, c.Settings().HighShelfGainDB)
}

func TestChain_NewChainClamps(t *testing.T) {
	c := NewChain(Settings{LowShelfGainDB: 99, LowShelfFreqHz: 1, HighShelfGainDB: -99, HighShelfFreqHz: 1})

	assert.Equal(t, Settings{
		LowShelfGainDB:  MaxGainDB,
		LowShelfFreqHz:  MinLowShelfFreqHz,
		HighShelfGainDB: MinGainDB,
		HighShelfFreqHz: MinHighShelfFreqHz,
	}, c.Settings())
}

func TestSettings_SettersIgnoreNaN(t *testing.T) {
	s := DefaultSettings()
	s.SetLowShelfGain(4)
	s.SetHighShelfFreq(6000)
	before := s

	nan := math.NaN()
	s.SetLowShelfGain(nan)
	s.SetLowShelfFreq(nan)
	s.SetHighShelfGain(nan)
	s.SetHighShelfFreq(nan)

	assert.Equal(t, before, s)
}

func TestSettings_ClampedReplacesNaNWithDefaults(t *testing.T) {
	nan := math.NaN()
	got := Settings{LowShelfGainDB: nan, LowShelfFreqHz: nan, HighShelfGainDB: 5, HighShelfFreqHz: nan}.Clamped()

	assert.Equal(t, Settings{
		LowShelfFreqHz:  DefaultLowShelfFreqHz,
		HighShelfGainDB: 5,
		HighShelfFreqHz: DefaultHighShelfFreqHz,
	}, got)
}

func TestChain_NaNSettingsKeepOutputFinite(t *testing.T) {
	c := NewChain(DefaultSettings())
	wrapped := c.Wrap(&constStreamer{remaining: 1 << 20, value: 0.2}, testRate)
	buf := make([][2]float64, 512)
	wrapped.Stream(buf)

	nan := math.NaN()
	c.Apply(Settings{LowShelfGainDB: nan, LowShelfFreqHz: nan, HighShelfGainDB: nan, HighShelfFreqHz: nan})
	wrapped.Stream(buf)
	c.Apply(DefaultSettings())

	for range 100 {
		n, _ := wrapped.Stream(buf)
		require.Positive(t, n)
		for i := range n {
			require.False(t, math.IsNaN(buf[i][0]) || math.IsNaN(buf[i][1]), "sample %d is NaN", i)
		}
	}
	assert.InDelta(t, 0.2, buf[len(buf)-1][0], 1e-6)
}

func TestShelfCoefficients_StableBelowNyquist(t *testing.T) {
	// 20 kHz corner on a 32 kHz stream is pulled below Nyquist
	c := shelfCoefficients(highShelf, 6, 20000, beep.SampleRate(32000))

	for _, v := range []float64{c.b0, c.b1, c.b2, c.a1, c.a2} {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
	// poles inside the unit circle
	assert.Less(t, math.Abs(c.a2), 1.0)
	assert.Less(t, math.Abs(c.a1), 1+c.a2)
}

func TestShelfCoefficients_ZeroSampleRate(t *testing.T) {
	assert.Equal(t, passthrough, shelfCoefficients(lowShelf, 6, 100, 0))
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 5)

	presets[0].Name = "changed"
	assert.Equal(t, "Flat", Presets()[0].Name, "Presets() should return a copy")

	p, ok := FindPreset("bass boost")
	require.True(t, ok)
	s := p.ApplyTo(DefaultSettings())
	assert.Equal(t, 6.0, s.LowShelfGainDB)
	assert.Equal(t, 0.0, s.HighShelfGainDB)
	assert.Equal(t, DefaultLowShelfFreqHz, s.LowShelfFreqHz, "frequencies untouched")

	_, ok = FindPreset("non-existent")
	assert.False(t, ok)
}
