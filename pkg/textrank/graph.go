// Package textrank implements graph-based extractive summarization:
// a lexical-overlap similarity graph over sentences, a co-occurrence graph
// over tokens, and a shared PageRank-family ranker that scores the nodes of
// either graph.
package textrank

import "math"

// edge is one endpoint of a weighted undirected connection.
type edge struct {
	to     int
	weight float64
}

// Graph is a weighted undirected graph over nodes indexed 0..N-1, stored as
// adjacency slices so the ranker iterates plain arrays rather than chasing a
// node structure.
type Graph struct {
	n         int
	adj       [][]edge
	outWeight []float64
}

// NewGraph creates an empty graph over n nodes.
func NewGraph(n int) *Graph {
	return &Graph{
		n:         n,
		adj:       make([][]edge, n),
		outWeight: make([]float64, n),
	}
}

// Len returns the node count.
func (g *Graph) Len() int { return g.n }

// AddEdge connects i and j in both directions with the given weight.
// Zero-weight edges and self-loops are ignored.
func (g *Graph) AddEdge(i, j int, weight float64) {
	if i == j || weight <= 0 {
		return
	}
	g.adj[i] = append(g.adj[i], edge{to: j, weight: weight})
	g.adj[j] = append(g.adj[j], edge{to: i, weight: weight})
	g.outWeight[i] += weight
	g.outWeight[j] += weight
}

// Sentence is one unit of the summary graph: its position in the document,
// its raw text, and its content tokens (normalized, stop-words removed).
type Sentence struct {
	Index  int
	Text   string
	Tokens []string
}

// BuildSimilarityGraph builds the sentence similarity graph. The weight
// between two sentences is the number of shared distinct tokens, discounted
// by the log of each sentence's token count so a short and a long sentence
// cannot score high on spurious overlap:
//
//	weight(i,j) = |tokens_i ∩ tokens_j| / (log|tokens_i| + log|tokens_j|)
//
// Sentences with one token or fewer have no defined discount and connect to
// nothing. Pairs with no overlap get no edge, keeping the graph sparse.
func BuildSimilarityGraph(sentences []Sentence) *Graph {
	g := NewGraph(len(sentences))

	sets := make([]map[string]struct{}, len(sentences))
	for i, s := range sentences {
		set := make(map[string]struct{}, len(s.Tokens))
		for _, tok := range s.Tokens {
			set[tok] = struct{}{}
		}
		sets[i] = set
	}

	for i := range sentences {
		for j := i + 1; j < len(sentences); j++ {
			w := similarity(sentences[i].Tokens, sentences[j].Tokens, sets[i], sets[j])
			g.AddEdge(i, j, w)
		}
	}

	return g
}

// similarity computes the discounted overlap weight for one sentence pair.
func similarity(tokensA, tokensB []string, setA, setB map[string]struct{}) float64 {
	if len(tokensA) <= 1 || len(tokensB) <= 1 {
		return 0
	}

	small, large := setA, setB
	if len(small) > len(large) {
		small, large = large, small
	}
	shared := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}

	return float64(shared) / (math.Log(float64(len(tokensA))) + math.Log(float64(len(tokensB))))
}
