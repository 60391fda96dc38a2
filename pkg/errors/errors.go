// Package errors provides common domain error types for the digest pipeline.
//
// This package defines sentinel errors for the conditions the pipeline
// distinguishes: invalid input that aborts an invocation before any
// computation, and empty input that short-circuits to an empty result.
// Using typed errors enables consistent error handling patterns with
// errors.Is() checks.
//
// Usage:
//
//	import dgerrors "github.com/convoscribe/digest-cli/pkg/errors"
//
//	// Return a domain error
//	return nil, fmt.Errorf("asr segment 3: end before start: %w", dgerrors.ErrValidation)
//
//	// Check for domain errors
//	if dgerrors.IsValidation(err) {
//	    // handle invalid input
//	}
package errors

import "errors"

// Domain errors - common sentinel errors for pipeline conditions.
var (
	// ErrValidation indicates malformed input segments (end before start,
	// negative times, or diarization entirely outside the transcript span).
	// Validation failures abort the invocation before any computation.
	ErrValidation = errors.New("validation error")

	// ErrEmptyInput indicates an empty ASR or diarization segment list.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoOverlap indicates no diarization interval intersects the
	// transcript's time span at all.
	ErrNoOverlap = errors.New("diarization does not overlap transcript")
)

// IsValidation reports whether any error in err's chain is ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsEmptyInput reports whether any error in err's chain is ErrEmptyInput.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

// IsNoOverlap reports whether any error in err's chain is ErrNoOverlap.
func IsNoOverlap(err error) bool {
	return errors.Is(err, ErrNoOverlap)
}
