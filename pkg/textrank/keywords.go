package textrank

import "sort"

// Keyword is a ranked token.
type Keyword struct {
	Token string  `json:"token"`
	Score float64 `json:"score"`
}

// ExtractKeywords builds a co-occurrence graph over the distinct tokens of
// the stream and ranks them with the same fixed-point iteration as sentence
// ranking. An edge accumulates one count for every token pair that appears
// together inside a sliding window of windowSize tokens. The stream is
// expected to be pre-filtered (content tokens only), so stop-words never
// distort neighboring edge weights.
//
// The result holds the topK tokens by descending score; equal scores are
// broken by first occurrence in the stream. Tokens are distinct by
// construction.
func ExtractKeywords(tokens []string, windowSize, topK int, damping float64, maxIterations int, epsilon float64) ([]Keyword, RankInfo) {
	if len(tokens) == 0 || topK <= 0 {
		return nil, RankInfo{Converged: true}
	}

	// Node index by first occurrence.
	index := make(map[string]int)
	var vocab []string
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		id, ok := index[tok]
		if !ok {
			id = len(vocab)
			index[tok] = id
			vocab = append(vocab, tok)
		}
		ids[i] = id
	}

	// Accumulate in-window pair counts, then materialize each pair as a
	// single weighted edge.
	type pair struct{ a, b int }
	counts := make(map[pair]float64)
	for i := range ids {
		end := i + windowSize
		if end > len(ids) {
			end = len(ids)
		}
		for j := i + 1; j < end; j++ {
			a, b := ids[i], ids[j]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			counts[pair{a, b}]++
		}
	}

	// Insert edges in sorted pair order; map iteration order would vary the
	// float summation order between runs and break bit-identical reruns.
	pairs := make([]pair, 0, len(counts))
	for p := range counts {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	g := NewGraph(len(vocab))
	for _, p := range pairs {
		g.AddEdge(p.a, p.b, counts[p])
	}

	scores, info := Rank(g, damping, maxIterations, epsilon)

	order := make([]int, len(vocab))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})

	if topK > len(order) {
		topK = len(order)
	}
	keywords := make([]Keyword, 0, topK)
	for _, id := range order[:topK] {
		keywords = append(keywords, Keyword{Token: vocab[id], Score: scores[id]})
	}
	return keywords, info
}
