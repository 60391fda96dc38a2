package transcript

import "strings"

// Merge collapses consecutive labeled segments that share a speaker into
// conversation turns. A new turn starts when the speaker changes, or when the
// silence between two segments of the same speaker exceeds maxGap seconds.
// Runs of nil-speaker segments merge with each other, never with an
// identified speaker. Merging never reorders: turns come out time-ordered
// and non-overlapping, and concatenating their texts reproduces the input
// text. Segments that overlap slightly at a turn boundary get the new turn's
// start clamped to the previous turn's end.
func Merge(labeled []LabeledSegment, maxGap float64) []Turn {
	if len(labeled) == 0 {
		return nil
	}

	var turns []Turn
	var texts []string

	flush := func(t *Turn) {
		t.Text = strings.Join(texts, " ")
		turns = append(turns, *t)
		texts = texts[:0]
	}

	first := labeled[0]
	current := Turn{
		Speaker:        first.Speaker,
		Start:          first.Start,
		End:            first.End,
		SegmentIndices: []int{0},
	}
	texts = append(texts, first.Text)

	for i, seg := range labeled[1:] {
		idx := i + 1
		gap := seg.Start - current.End
		if !sameSpeaker(current.Speaker, seg.Speaker) || gap > maxGap {
			// Segments may overlap slightly at boundaries; turns must not.
			start := seg.Start
			if start < current.End {
				start = current.End
			}
			end := seg.End
			if end < start {
				end = start
			}
			flush(&current)
			current = Turn{
				Speaker:        seg.Speaker,
				Start:          start,
				End:            end,
				SegmentIndices: []int{idx},
			}
			texts = append(texts, seg.Text)
			continue
		}

		if seg.End > current.End {
			current.End = seg.End
		}
		current.SegmentIndices = append(current.SegmentIndices, idx)
		texts = append(texts, seg.Text)
	}
	flush(&current)

	return turns
}

// sameSpeaker reports whether two optional speaker ids refer to the same
// speaker. Two nils count as the same (unassigned) speaker.
func sameSpeaker(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
