package transcript

import "strings"

var lineBreaks = strings.NewReplacer("\n", " ", "\r", " ")

// Normalize returns a copy of entries with every line-break character in
// the text replaced by a single space. Total: empty text stays empty, all
// other characters are left unchanged.
func Normalize(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Text = lineBreaks.Replace(e.Text)
		out[i] = e
	}
	return out
}
