// Package transcript provides the data model and processing for
// speaker-attributed transcripts: temporal alignment of ASR segments against
// diarization intervals, merging of aligned segments into conversation turns,
// and canonical speaker labeling.
package transcript

// Segment represents a single timestamped chunk of recognized speech,
// produced by an external ASR system. Times are seconds from the start of
// the audio.
type Segment struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
}

// SpeakerSegment represents a timestamped interval attributed to one speaker
// identity, produced by an external diarization system. Intervals for one
// speaker need not be contiguous, and intervals across speakers may overlap
// during cross-talk.
type SpeakerSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

// LabeledSegment is an ASR segment with its assigned speaker. Speaker is nil
// when no diarization interval overlaps the segment; downstream code decides
// how to present unassigned speech.
type LabeledSegment struct {
	Segment
	Speaker *string `json:"speaker"`
}

// Turn is a contiguous, speaker-consistent block of conversation built from
// merged ASR segments. Speaker is nil for runs of unassigned segments.
// SegmentIndices records which input segments the turn was built from, in
// order.
type Turn struct {
	Speaker        *string `json:"speaker"`
	Label          string  `json:"label,omitempty"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Text           string  `json:"text"`
	SegmentIndices []int   `json:"-"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// overlap returns the length of the intersection of [aStart,aEnd] and
// [bStart,bEnd]. Zero or negative means the intervals do not overlap.
func overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	return hi - lo
}
