// Package errmsg turns errors into the one-line messages shown in the
// status bar.
package errmsg

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Op names the action the user attempted.
type Op string

const (
	OpLibraryRefresh Op = "refresh library"

	OpTrackLoad        Op = "load track"
	OpPlaybackStart    Op = "start playback"
	OpPlaybackToggle   Op = "toggle playback"
	OpPlaybackNext     Op = "skip to next track"
	OpPlaybackPrevious Op = "go back to previous track"
	OpPlaybackStop     Op = "stop playback"
	OpModeToggle       Op = "toggle mode"

	OpVolumeSet       Op = "set volume"
	OpEqualizerSet    Op = "adjust equalizer"
	OpEqualizerPreset Op = "apply equalizer preset"

	OpInitialize Op = "initialize application"
	OpMediaKeys  Op = "register media keys"
)

// Format renders err as "Failed to <op>: <err>". Hints attached with
// errors.WithHint follow in parentheses. A nil error renders as "".
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject of the operation, usually a track
// or preset name, quoted after the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Failed to ")
	b.WriteString(string(op))
	if subject != "" {
		b.WriteString(" '" + subject + "'")
	}
	b.WriteString(": ")
	b.WriteString(err.Error())
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		b.WriteString(" (" + strings.Join(hints, "; ") + ")")
	}
	return b.String()
}
