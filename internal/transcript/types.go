package transcript

import "errors"

// ErrEmptyTranscript is returned by Merge when the caption file yielded no
// entries. Callers should report the file as empty instead of generating a
// document.
var ErrEmptyTranscript = errors.New("transcript contains no entries")

// Entry is one timed caption cue with its speaker attribution. Timestamps
// are opaque HH:MM:SS.mmm strings produced by the parser; this package only
// copies them, it never computes with them.
type Entry struct {
	Start   string
	End     string
	Speaker string
	Text    string
}

// Turn is a maximal run of consecutive entries sharing one speaker, merged
// into a single block of text spanning the run's overall time range.
type Turn struct {
	Text    string
	Start   string
	End     string
	Speaker string
}
