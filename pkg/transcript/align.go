package transcript

// Align assigns a speaker to each ASR segment by choosing the diarization
// interval with the largest overlap duration. Ties go to the diarization
// interval that starts earliest. Segments overlapping no interval keep a nil
// speaker; they are never dropped.
//
// The scan is O(A*D). Segment counts from one recording are tens to low
// hundreds, so an interval tree would not pay for itself.
func Align(asr []Segment, diar []SpeakerSegment) []LabeledSegment {
	labeled := make([]LabeledSegment, 0, len(asr))

	for _, seg := range asr {
		var (
			best      int = -1
			bestDur   float64
			bestStart float64
		)
		for di, d := range diar {
			dur := overlap(seg.Start, seg.End, d.Start, d.End)
			if dur <= 0 {
				continue
			}
			if best == -1 || dur > bestDur || (dur == bestDur && d.Start < bestStart) {
				best = di
				bestDur = dur
				bestStart = d.Start
			}
		}

		ls := LabeledSegment{Segment: seg}
		if best >= 0 {
			speaker := diar[best].Speaker
			ls.Speaker = &speaker
		}
		labeled = append(labeled, ls)
	}

	return labeled
}
