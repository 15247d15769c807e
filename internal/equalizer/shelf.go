package equalizer

import (
	"math"

	"github.com/gopxl/beep/v2"
)

type shelfKind int

const (
	lowShelf shelfKind = iota
	highShelf
)

// coefficients of a normalized biquad (a0 == 1).
type coefficients struct {
	b0, b1, b2 float64
	a1, a2     float64
}

var passthrough = coefficients{b0: 1}

// shelfCoefficients computes RBJ Audio EQ Cookbook shelving coefficients
// with a shelf slope of 1.
func shelfCoefficients(kind shelfKind, gainDB, freqHz float64, sampleRate beep.SampleRate) coefficients {
	sr := float64(sampleRate)
	if sr <= 0 {
		return passthrough
	}
	// Corner must stay below Nyquist for the filter to be stable.
	freqHz = math.Min(freqHz, 0.45*sr)

	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freqHz / sr
	cosW := math.Cos(w0)
	alpha := math.Sin(w0) / 2 * math.Sqrt2
	twoSqrtAAlpha := 2 * math.Sqrt(a) * alpha

	var b0, b1, b2, a0, a1, a2 float64
	switch kind {
	case lowShelf:
		b0 = a * ((a + 1) - (a-1)*cosW + twoSqrtAAlpha)
		b1 = 2 * a * ((a - 1) - (a+1)*cosW)
		b2 = a * ((a + 1) - (a-1)*cosW - twoSqrtAAlpha)
		a0 = (a + 1) + (a-1)*cosW + twoSqrtAAlpha
		a1 = -2 * ((a - 1) + (a+1)*cosW)
		a2 = (a + 1) + (a-1)*cosW - twoSqrtAAlpha
	case highShelf:
		b0 = a * ((a + 1) + (a-1)*cosW + twoSqrtAAlpha)
		b1 = -2 * a * ((a - 1) + (a+1)*cosW)
		b2 = a * ((a + 1) + (a-1)*cosW - twoSqrtAAlpha)
		a0 = (a + 1) - (a-1)*cosW + twoSqrtAAlpha
		a1 = 2 * ((a - 1) - (a+1)*cosW)
		a2 = (a + 1) - (a-1)*cosW - twoSqrtAAlpha
	}

	return coefficients{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

// biquad is one stereo shelving stage in Direct Form I.
// Coefficients are owned by the enclosing Chain and guarded by its mutex.
type biquad struct {
	c      coefficients
	x1, x2 [2]float64
	y1, y2 [2]float64
}

func (f *biquad) process(samples [][2]float64) {
	c := f.c
	for i := range samples {
		for ch := range 2 {
			x := samples[i][ch]
			y := c.b0*x + c.b1*f.x1[ch] + c.b2*f.x2[ch] - c.a1*f.y1[ch] - c.a2*f.y2[ch]
			f.x2[ch], f.x1[ch] = f.x1[ch], x
			f.y2[ch], f.y1[ch] = f.y1[ch], y
			samples[i][ch] = y
		}
	}
}

func (f *biquad) reset() {
	f.x1, f.x2 = [2]float64{}, [2]float64{}
	f.y1, f.y2 = [2]float64{}, [2]float64{}
}
