package textseg

import "unicode/utf8"

// StopwordSet is a set of normalized tokens excluded from graph
// construction.
type StopwordSet map[string]struct{}

// englishStopwords is a compact function-word list; keywords and sentence
// similarity only care about content tokens.
var englishStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "been", "but", "by", "can",
	"could", "did", "do", "does", "for", "from", "had", "has", "have", "he",
	"her", "here", "hers", "him", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "just", "me", "my", "no", "not", "of", "on", "or", "our",
	"she", "so", "some", "than", "that", "the", "their", "them", "then",
	"there", "these", "they", "this", "to", "too", "up", "us", "was", "we",
	"were", "what", "when", "where", "which", "who", "why", "will", "with",
	"would", "you", "your",
}

// chineseStopwords covers the high-frequency particles and pronouns that
// otherwise dominate co-occurrence graphs.
var chineseStopwords = []string{
	"的", "了", "和", "是", "就", "都", "而", "及", "與", "与", "著", "着",
	"或", "一個", "一个", "沒有", "没有", "我們", "我们", "你們", "你们",
	"他們", "他们", "她們", "她们", "這個", "这个", "那個", "那个", "這樣",
	"这样", "那樣", "那样", "因為", "因为", "所以", "但是", "可以", "這些",
	"这些", "那些", "自己", "什麼", "什么", "怎麼", "怎么", "還有", "还有",
	"就是", "如果", "已經", "已经", "非常", "可能", "時候", "时候",
}

// DefaultStopwords returns the built-in English plus Chinese stop-word set.
func DefaultStopwords() StopwordSet {
	set := make(StopwordSet, len(englishStopwords)+len(chineseStopwords))
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	for _, w := range chineseStopwords {
		set[w] = struct{}{}
	}
	return set
}

// Add inserts additional words, normalized, into the set.
func (s StopwordSet) Add(words ...string) {
	for _, w := range words {
		s[Normalize(w)] = struct{}{}
	}
}

// Contains reports whether a normalized token is a stop-word.
func (s StopwordSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// ContentTokens normalizes raw tokens and drops stop-words and single-rune
// tokens. The filtering happens before any graph is built, so excluded
// tokens cannot distort neighboring edge weights.
func ContentTokens(tokens []string, stop StopwordSet) []string {
	var content []string
	for _, tok := range tokens {
		n := Normalize(tok)
		if utf8.RuneCountInString(n) < 2 {
			continue
		}
		if stop.Contains(n) {
			continue
		}
		content = append(content, n)
	}
	return content
}
