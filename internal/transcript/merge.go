package transcript

import "strings"

// Merge collapses consecutive entries with the same speaker label into
// turns. Single left-to-right pass over the entries: an accumulator opens
// on the first entry, grows while the label stays the same (text joined
// with a space, end timestamp advanced to the newest entry), and is closed
// and emitted whenever the label changes. The open accumulator is always
// flushed at end of input, so a length-1 final run still becomes a turn.
//
// The label mapping is rebuilt here on every call; nothing leaks across
// files.
func Merge(entries []Entry) ([]Turn, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTranscript
	}

	labels := SpeakerLabels(entries)

	var turns []Turn
	cur := Turn{
		Text:    entries[0].Text,
		Start:   entries[0].Start,
		End:     entries[0].End,
		Speaker: entries[0].Speaker,
	}
	curLabel := labels[entries[0].Speaker]

	for _, e := range entries[1:] {
		if labels[e.Speaker] == curLabel {
			cur.Text += " " + e.Text
			cur.End = e.End
			continue
		}

		// Speaker change: close the run with the last entry's end time
		turns = append(turns, closeTurn(cur))
		cur = Turn{Text: e.Text, Start: e.Start, End: e.End, Speaker: e.Speaker}
		curLabel = labels[e.Speaker]
	}

	return append(turns, closeTurn(cur)), nil
}

func closeTurn(t Turn) Turn {
	t.Text = strings.TrimSpace(t.Text)
	return t
}
