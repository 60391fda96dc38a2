package transcript

import "fmt"

const (
	speakerPrefix = "Speaker "

	// UnknownLabel is the display label for turns whose segments overlapped
	// no diarization interval.
	UnknownLabel = "Unknown"
)

// LabelSpeakers assigns canonical display labels ("Speaker A", "Speaker B",
// ...) to turns in first-appearance order, writing them into each turn's
// Label field. Past 26 speakers the suffix becomes "X<ordinal>". Turns with
// a nil speaker are labeled UnknownLabel. The mapping from raw diarization
// ids to display labels is returned for callers that need to surface it.
func LabelSpeakers(turns []Turn) map[string]string {
	mapping := make(map[string]string)

	for i := range turns {
		if turns[i].Speaker == nil {
			turns[i].Label = UnknownLabel
			continue
		}
		id := *turns[i].Speaker
		label, ok := mapping[id]
		if !ok {
			label = displayLabel(len(mapping))
			mapping[id] = label
		}
		turns[i].Label = label
	}

	return mapping
}

// displayLabel returns the label for the ordinal-th distinct speaker.
func displayLabel(ordinal int) string {
	if ordinal < 26 {
		return speakerPrefix + string(rune('A'+ordinal))
	}
	return fmt.Sprintf("%sX%d", speakerPrefix, ordinal)
}
