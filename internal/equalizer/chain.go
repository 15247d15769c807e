package equalizer

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// Chain is the low-shelf -> high-shelf cascade for one audio resource.
//
// The chain is bound once per track load through Wrap. Parameter changes are
// pushed into the live stages by Apply without rebuilding anything. A chain
// that was never bound passes audio through untouched and only remembers
// its settings.
type Chain struct {
	mu         sync.Mutex
	settings   Settings
	sampleRate beep.SampleRate
	low        biquad
	high       biquad
	bound      bool
}

// NewChain creates an unbound chain with the given settings.
func NewChain(s Settings) *Chain {
	return &Chain{settings: s.Clamped()}
}

// Wrap splices the chain after src, which produces samples at sampleRate.
// Wrapping again rebinds the chain and resets the filter state.
func (c *Chain) Wrap(src beep.Streamer, sampleRate beep.SampleRate) beep.Streamer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sampleRate = sampleRate
	c.low.reset()
	c.high.reset()
	c.updateLocked()
	c.bound = true

	return &chainStreamer{chain: c, src: src}
}

// Bound reports whether the chain is part of a live audio graph.
func (c *Chain) Bound() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bound
}

// Settings returns the settings currently applied.
func (c *Chain) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Apply updates the live filter stages in place.
func (c *Chain) Apply(s Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = s.Clamped()
	if c.bound {
		c.updateLocked()
	}
}

func (c *Chain) updateLocked() {
	c.low.c = shelfCoefficients(lowShelf, c.settings.LowShelfGainDB, c.settings.LowShelfFreqHz, c.sampleRate)
	c.high.c = shelfCoefficients(highShelf, c.settings.HighShelfGainDB, c.settings.HighShelfFreqHz, c.sampleRate)
}

func (c *Chain) process(samples [][2]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Order is part of the response: low shelf first, then high shelf.
	c.low.process(samples)
	c.high.process(samples)
}

var _ beep.Streamer = (*chainStreamer)(nil)

type chainStreamer struct {
	chain *Chain
	src   beep.Streamer
}

// Stream implements beep.Streamer.
func (s *chainStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = s.src.Stream(samples)
	if n > 0 {
		s.chain.process(samples[:n])
	}
	return n, ok
}

// Err implements beep.Streamer.
func (s *chainStreamer) Err() error {
	return s.src.Err()
}
