package transcript

import (
	"encoding/json"
	"fmt"
	"io"
)

// ASRDocument is the JSON document produced by the external recognizer:
// either a whisper-style object with a detected language and a segment list,
// or a bare segment array.
type ASRDocument struct {
	Language string    `json:"language,omitempty"`
	Segments []Segment `json:"segments"`
}

// LoadASR reads an ASR document from r. Both the object form
// {"language": "...", "segments": [...]} and a bare array of segments are
// accepted; segments without their own language code inherit the document
// language.
func LoadASR(r io.Reader) (*ASRDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading asr input: %w", err)
	}

	var doc ASRDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		var segments []Segment
		if arrErr := json.Unmarshal(data, &segments); arrErr != nil {
			return nil, fmt.Errorf("parsing asr input: %w", err)
		}
		doc = ASRDocument{Segments: segments}
	}

	for i := range doc.Segments {
		if doc.Segments[i].Language == "" {
			doc.Segments[i].Language = doc.Language
		}
	}
	if doc.Language == "" {
		for _, s := range doc.Segments {
			if s.Language != "" {
				doc.Language = s.Language
				break
			}
		}
	}

	return &doc, nil
}

// LoadDiarization reads a diarization document from r. Both
// {"segments": [...]} and a bare array of speaker segments are accepted.
func LoadDiarization(r io.Reader) ([]SpeakerSegment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading diarization input: %w", err)
	}

	var doc struct {
		Segments []SpeakerSegment `json:"segments"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Segments != nil {
		return doc.Segments, nil
	}

	var segments []SpeakerSegment
	if err := json.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("parsing diarization input: %w", err)
	}
	return segments, nil
}
