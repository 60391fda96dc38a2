package transcript

import (
	"fmt"

	dgerrors "github.com/convoscribe/digest-cli/pkg/errors"
)

// Validate checks both segment lists before any computation begins. A failure
// here aborts the invocation; once Validate passes the pipeline is expected
// to run to completion.
//
// Rules:
//   - both lists must be non-empty
//   - every segment must have end > start and start >= 0
//   - at least one diarization interval must intersect the transcript's
//     overall time span
func Validate(asr []Segment, diar []SpeakerSegment) error {
	if len(asr) == 0 {
		return fmt.Errorf("asr segments: %w", dgerrors.ErrEmptyInput)
	}
	if len(diar) == 0 {
		return fmt.Errorf("diarization segments: %w", dgerrors.ErrEmptyInput)
	}

	for i, s := range asr {
		if s.Start < 0 {
			return fmt.Errorf("asr segment %d: negative start %.3f: %w", i, s.Start, dgerrors.ErrValidation)
		}
		if s.End <= s.Start {
			return fmt.Errorf("asr segment %d: end %.3f not after start %.3f: %w", i, s.End, s.Start, dgerrors.ErrValidation)
		}
	}

	spanStart, spanEnd := asr[0].Start, asr[0].End
	for _, s := range asr[1:] {
		if s.Start < spanStart {
			spanStart = s.Start
		}
		if s.End > spanEnd {
			spanEnd = s.End
		}
	}

	anyOverlap := false
	for i, d := range diar {
		if d.Start < 0 {
			return fmt.Errorf("diarization segment %d: negative start %.3f: %w", i, d.Start, dgerrors.ErrValidation)
		}
		if d.End <= d.Start {
			return fmt.Errorf("diarization segment %d: end %.3f not after start %.3f: %w", i, d.End, d.Start, dgerrors.ErrValidation)
		}
		if overlap(d.Start, d.End, spanStart, spanEnd) > 0 {
			anyOverlap = true
		}
	}
	if !anyOverlap {
		return fmt.Errorf("transcript spans [%.3f, %.3f]: %w", spanStart, spanEnd, dgerrors.ErrNoOverlap)
	}

	return nil
}
