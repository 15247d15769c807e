package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	meterFilled = "▮"
	meterEmpty  = "▯"
)

// Meter renders level (0..1) as width cells. Filled cells blend from one
// color to the other across the full width, so the tip color tells the level.
func Meter(level float64, width int, from, to lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	level = min(max(level, 0), 1)
	filled := int(level*float64(width) + 0.5)

	colors := blend(width, from, to)
	var b strings.Builder
	for i := range width {
		if i < filled {
			b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(meterFilled))
			continue
		}
		b.WriteString(T().S().Subtle.Render(meterEmpty))
	}
	return b.String()
}

// blend returns size colors blended in HCL space between from and to.
func blend(size int, from, to lipgloss.Color) []lipgloss.Color {
	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	out := make([]lipgloss.Color, size)
	if err1 != nil || err2 != nil || size < 2 {
		for i := range out {
			out[i] = from
		}
		return out
	}
	for i := range size {
		t := float64(i) / float64(size-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return out
}
