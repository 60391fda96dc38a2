// Package textseg provides language-aware text segmentation: sentence
// splitting on terminal punctuation and tokenization behind a strategy
// interface so that scripts without whitespace word boundaries (the
// Chinese family) get dictionary-based word-breaking while everything else
// uses Unicode word boundaries.
package textseg

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits sentence text into an ordered sequence of word tokens.
// Whitespace and pure-punctuation runs are never returned as tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// ForLanguage selects the tokenization strategy for a language code once, at
// pipeline entry. Chinese-family codes (zh, cmn, yue, and their regional
// variants) get the dictionary-based segmenter; everything else, including
// unrecognized codes, gets the Unicode word-boundary segmenter.
func ForLanguage(code string) Tokenizer {
	if isChinese(code) {
		return newChineseTokenizer()
	}
	return unicodeTokenizer{}
}

// isChinese reports whether the language code belongs to the Chinese family.
func isChinese(code string) bool {
	if code == "" {
		return false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "zh", "cmn", "yue", "wuu", "hak", "nan":
		return true
	}
	return false
}

// Normalize canonicalizes a token for comparison: NFKC fold plus lowercase.
func Normalize(token string) string {
	return strings.ToLower(norm.NFKC.String(token))
}
