package textseg

import "strings"

// maxSentenceRunes bounds sentence length when ASR output carries no
// terminal punctuation at all.
const maxSentenceRunes = 200

// terminal punctuation across the scripts the pipeline handles.
var sentenceTerminators = map[rune]bool{
	'。': true,
	'！': true,
	'？': true,
	'.': true,
	'!': true,
	'?': true,
	'…': true,
}

// SplitSentences splits text into an ordered sequence of sentences on
// terminal punctuation, with a maximum-length fallback so unpunctuated ASR
// output cannot produce an unbounded sentence. Newlines are treated as
// spaces. Empty input yields an empty slice, never an error.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if text == "" {
		return nil
	}

	var sentences []string
	var current []rune

	flush := func() {
		s := strings.TrimSpace(string(current))
		if s != "" {
			sentences = append(sentences, s)
		}
		current = current[:0]
	}

	for _, r := range text {
		current = append(current, r)
		if sentenceTerminators[r] || len(current) >= maxSentenceRunes {
			flush()
		}
	}
	flush()

	return sentences
}
