package textseg

import (
	"sync"

	"github.com/go-ego/gse"
)

var (
	gseOnce sync.Once
	gseSeg  gse.Segmenter
)

// chineseTokenizer delegates to gse's dictionary/statistical word-breaking.
// The dictionary load is expensive, so one segmenter is shared by all
// instances; gse segmentation is safe for concurrent readers once loaded.
type chineseTokenizer struct {
	seg *gse.Segmenter
}

func newChineseTokenizer() chineseTokenizer {
	gseOnce.Do(func() {
		gseSeg.LoadDict()
	})
	return chineseTokenizer{seg: &gseSeg}
}

func (c chineseTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, w := range c.seg.Cut(text, true) {
		if isWord(w) {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
