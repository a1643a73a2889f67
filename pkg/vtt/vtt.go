package vtt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidEncoding is returned when the input bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("caption file is not valid UTF-8")

	// ErrMissingHeader is returned when the file does not start with a WEBVTT header.
	ErrMissingHeader = errors.New("missing WEBVTT header")
)

// ParseError describes a malformed cue block at a specific line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Cue is one timed caption from a WebVTT file. Timestamps are kept as
// formatted HH:MM:SS.mmm strings; callers compare and copy them, never
// compute with them.
type Cue struct {
	Start   string
	End     string
	Speaker string // empty when the cue has no voice tag
	Text    string // raw cue text, lines joined with \n
}

var (
	reTimestamp    = regexp.MustCompile(`^(\d{1,4}:)?\d{2}:\d{2}\.\d{3}$`)
	reVoiceOpen = regexp.MustCompile(`^<v(?:\.[^\s>]+)*\s+([^>]*)>`)
	reTag       = regexp.MustCompile(`</?[^>]*>`)
)

// ParseFile reads and parses a WebVTT file from disk.
func ParseFile(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read caption file: %w", err)
	}
	return parse(data)
}

// Parse reads a full WebVTT document from r and returns its cues in file
// order. Cue order is preserved as-is, not re-sorted by timestamp.
func Parse(r io.Reader) ([]Cue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read caption stream: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Cue, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	i := skipBlank(lines, 0)
	if i >= len(lines) || !strings.HasPrefix(lines[i], "WEBVTT") {
		return nil, ErrMissingHeader
	}
	// Header block may carry metadata lines; everything up to the first
	// blank line belongs to it.
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		i++
	}

	var cues []Cue
	for {
		i = skipBlank(lines, i)
		if i >= len(lines) {
			break
		}

		block, next := collectBlock(lines, i)
		if isComment(block[0]) {
			i = next
			continue
		}

		cue, err := parseCue(block, i)
		if err != nil {
			return nil, err
		}
		cues = append(cues, cue)
		i = next
	}

	return cues, nil
}

// parseCue parses one cue block: an optional identifier line, the timing
// line, then the payload lines. start is the zero-based index of the
// block's first line, used for error reporting.
func parseCue(block []string, start int) (Cue, error) {
	timingIdx := 0
	if !strings.Contains(block[0], "-->") {
		// First line is a cue identifier
		timingIdx = 1
		if len(block) < 2 || !strings.Contains(block[1], "-->") {
			return Cue{}, &ParseError{Line: start + 1, Msg: "expected cue timing line"}
		}
	}

	startTS, endTS, err := parseTiming(block[timingIdx], start+timingIdx+1)
	if err != nil {
		return Cue{}, err
	}

	payload := block[timingIdx+1:]
	speaker := ""
	if len(payload) > 0 {
		if m := reVoiceOpen.FindStringSubmatch(payload[0]); m != nil {
			speaker = strings.TrimSpace(m[1])
		}
	}

	stripped := make([]string, len(payload))
	for j, line := range payload {
		stripped[j] = reTag.ReplaceAllString(line, "")
	}

	return Cue{
		Start:   startTS,
		End:     endTS,
		Speaker: speaker,
		Text:    strings.Join(stripped, "\n"),
	}, nil
}

// parseTiming validates "start --> end [settings]" and normalizes both
// timestamps to HH:MM:SS.mmm.
func parseTiming(line string, lineNo int) (string, string, error) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return "", "", &ParseError{Line: lineNo, Msg: "expected cue timing line"}
	}

	startTS := strings.TrimSpace(parts[0])
	// Cue settings follow the end timestamp, separated by whitespace
	endTS := strings.TrimSpace(parts[1])
	if fields := strings.Fields(endTS); len(fields) > 0 {
		endTS = fields[0]
	}

	if !reTimestamp.MatchString(startTS) {
		return "", "", &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid start timestamp %q", startTS)}
	}
	if !reTimestamp.MatchString(endTS) {
		return "", "", &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid end timestamp %q", endTS)}
	}

	return normalizeTimestamp(startTS), normalizeTimestamp(endTS), nil
}

// normalizeTimestamp pads the optional hours component so every timestamp
// leaves the parser as HH:MM:SS.mmm.
func normalizeTimestamp(ts string) string {
	switch strings.Count(ts, ":") {
	case 1:
		return "00:" + ts
	case 2:
		if strings.Index(ts, ":") == 1 {
			return "0" + ts
		}
	}
	return ts
}

func isComment(line string) bool {
	for _, prefix := range []string{"NOTE", "STYLE", "REGION"} {
		if line == prefix || strings.HasPrefix(line, prefix+" ") || strings.HasPrefix(line, prefix+"\t") {
			return true
		}
	}
	return false
}

func skipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

// collectBlock returns the run of non-blank lines starting at i and the
// index just past it.
func collectBlock(lines []string, i int) ([]string, int) {
	j := i
	for j < len(lines) && strings.TrimSpace(lines[j]) != "" {
		j++
	}
	return lines[i:j], j
}
