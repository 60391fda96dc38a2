package transcript

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// WebVTT parsing regular expressions
var (
	// Matches a cue timing line: 00:00:05.579 --> 00:00:06.858
	// The hours component is optional, as WebVTT allows.
	vttTimingRegex = regexp.MustCompile(`^(?:(\d{1,2}):)?(\d{2}):(\d{2})\.(\d{3})\s+-->\s+(?:(\d{1,2}):)?(\d{2}):(\d{2})\.(\d{3})`)

	// Matches a voice span opening a cue line: <v Speaker Name>text
	vttVoiceRegex = regexp.MustCompile(`^<v\s+([^>]+)>\s*(.*)$`)
)

// ParseVTT parses a WebVTT transcript export (the format Whisper-family
// tools emit) into ASR segments. Cue identifiers and NOTE blocks are
// skipped. A `<v Speaker>` voice span, when present, is stripped from the
// text; the speaker itself is discarded because diarization arrives on a
// separate timeline.
func ParseVTT(r io.Reader) ([]Segment, error) {
	scanner := bufio.NewScanner(r)

	var segments []Segment
	var current *Segment
	inNote := false

	flush := func() {
		if current != nil && current.Text != "" {
			segments = append(segments, *current)
		}
		current = nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			flush()
			inNote = false
			continue
		}
		if line == "WEBVTT" || strings.HasPrefix(line, "WEBVTT ") {
			continue
		}
		if strings.HasPrefix(line, "NOTE") {
			inNote = true
			continue
		}
		if inNote {
			continue
		}

		if m := vttTimingRegex.FindStringSubmatch(line); m != nil {
			flush()
			current = &Segment{
				Start: vttSeconds(m[1], m[2], m[3], m[4]),
				End:   vttSeconds(m[5], m[6], m[7], m[8]),
			}
			continue
		}

		// Cue identifiers precede timing lines; anything else with no open
		// cue is skipped.
		if current == nil {
			continue
		}

		if m := vttVoiceRegex.FindStringSubmatch(line); m != nil {
			line = strings.TrimSuffix(m[2], "</v>")
		}

		if current.Text != "" {
			current.Text += " "
		}
		current.Text += line
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vtt input: %w", err)
	}

	return segments, nil
}

// vttSeconds converts split timestamp components to seconds.
func vttSeconds(hours, minutes, seconds, millis string) float64 {
	h := 0
	if hours != "" {
		h, _ = strconv.Atoi(hours)
	}
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	ms, _ := strconv.Atoi(millis)
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}
