package textseg

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// unicodeTokenizer splits on UAX#29 word boundaries. It is the default
// strategy for whitespace-delimited scripts and the fallback for
// unrecognized language codes.
type unicodeTokenizer struct{}

func (unicodeTokenizer) Tokenize(text string) []string {
	var tokens []string

	state := -1
	var word string
	for rest := text; len(rest) > 0; {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if isWord(word) {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// isWord reports whether a boundary-delimited chunk is an actual word token
// rather than whitespace or punctuation.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
