package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"keeps tab", "a\tb", "a\tb"},
		{"drops control", "a\x00b\x1bc", "abc"},
		{"drops invalid byte", "a\x80b", "ab"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"keeps unicode", "Sigur Rós", "Sigur Rós"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"wide runes", "日本語の歌", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.width))
		})
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "hello   ", Fit("hello", 8))
	assert.Equal(t, "hello w…", Fit("hello world", 8))
	assert.Equal(t, "   ", Fit("", 3))
	assert.Empty(t, Fit("hello", -1))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "a   b", Row("a", "b", 5))
	assert.Equal(t, "abc def", Row("abc", "def", 4))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Empty(t, Separator(-2))
}
