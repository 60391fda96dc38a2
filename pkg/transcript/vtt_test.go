package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVTT_WhisperStyleCues(t *testing.T) {
	vtt := `WEBVTT

00:00:00.000 --> 00:00:02.500
Hello everyone.

00:00:02.500 --> 00:00:05.120
Thanks for joining today.
`

	segments, err := ParseVTT(strings.NewReader(vtt))
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 2.5, segments[0].End)
	assert.Equal(t, "Hello everyone.", segments[0].Text)
	assert.Equal(t, 5.12, segments[1].End)
}

func TestParseVTT_CueIdentifiersAndMultilineText(t *testing.T) {
	vtt := `WEBVTT

1
00:00:01.000 --> 00:00:03.000
First line
second line

2
00:00:03.000 --> 00:00:04.000
Next cue
`

	segments, err := ParseVTT(strings.NewReader(vtt))
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "First line second line", segments[0].Text)
	assert.Equal(t, "Next cue", segments[1].Text)
}

func TestParseVTT_OptionalHoursComponent(t *testing.T) {
	vtt := `WEBVTT

01:05.250 --> 01:07.000
Short timestamp form.
`

	segments, err := ParseVTT(strings.NewReader(vtt))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, 65.25, segments[0].Start)
	assert.Equal(t, 67.0, segments[0].End)
}

func TestParseVTT_StripsVoiceSpans(t *testing.T) {
	vtt := `WEBVTT

00:00:00.000 --> 00:00:01.000
<v Alice>Hi there.</v>
`

	segments, err := ParseVTT(strings.NewReader(vtt))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "Hi there.", segments[0].Text)
}

func TestParseVTT_SkipsNotesAndEmptyCues(t *testing.T) {
	vtt := `WEBVTT

NOTE
This block is metadata, not dialogue.

00:00:00.000 --> 00:00:01.000

00:00:01.000 --> 00:00:02.000
Real text.
`

	segments, err := ParseVTT(strings.NewReader(vtt))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "Real text.", segments[0].Text)
}

func TestParseVTT_EmptyInput(t *testing.T) {
	segments, err := ParseVTT(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, segments)
}
