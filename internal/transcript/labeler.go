package transcript

// SpeakerLabels maps each distinct speaker string to an integer label
// assigned in order of first appearance (0, 1, 2, ...). The empty speaker
// string is a distinct speaker like any other. Deterministic: the same
// entry sequence always yields the same mapping.
func SpeakerLabels(entries []Entry) map[string]int {
	labels := make(map[string]int)
	for _, e := range entries {
		if _, ok := labels[e.Speaker]; !ok {
			labels[e.Speaker] = len(labels)
		}
	}
	return labels
}
