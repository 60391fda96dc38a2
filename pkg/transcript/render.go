package transcript

import (
	"fmt"
	"strings"
	"time"
)

// RenderText renders labeled conversation turns as readable dialogue, one
// turn per line:
//
//	[00:00-00:04] Speaker A: hello world
func RenderText(turns []Turn) string {
	var b strings.Builder
	for _, turn := range turns {
		label := turn.Label
		if label == "" {
			if turn.Speaker != nil {
				label = *turn.Speaker
			} else {
				label = UnknownLabel
			}
		}
		fmt.Fprintf(&b, "[%s-%s] %s: %s\n", clockTime(turn.Start), clockTime(turn.End), label, turn.Text)
	}
	return b.String()
}

// clockTime formats seconds as MM:SS, or HH:MM:SS past the first hour.
func clockTime(sec float64) string {
	d := time.Duration(sec*1000) * time.Millisecond
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
