package textrank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sent(idx int, text string, tokens ...string) Sentence {
	return Sentence{Index: idx, Text: text, Tokens: tokens}
}

func TestBuildSimilarityGraph_WeightFormula(t *testing.T) {
	sentences := []Sentence{
		sent(0, "", "graph", "ranking", "scores"),
		sent(1, "", "graph", "ranking", "order", "output"),
	}

	g := BuildSimilarityGraph(sentences)

	// Two shared tokens, discounted by log(3)+log(4).
	want := 2.0 / (math.Log(3) + math.Log(4))
	require.Len(t, g.adj[0], 1)
	assert.InDelta(t, want, g.adj[0][0].weight, 1e-12)
	// Undirected: the reverse edge carries the same weight.
	require.Len(t, g.adj[1], 1)
	assert.InDelta(t, want, g.adj[1][0].weight, 1e-12)
}

func TestBuildSimilarityGraph_NoOverlapNoEdge(t *testing.T) {
	sentences := []Sentence{
		sent(0, "", "alpha", "beta"),
		sent(1, "", "gamma", "delta"),
	}

	g := BuildSimilarityGraph(sentences)
	assert.Empty(t, g.adj[0])
	assert.Empty(t, g.adj[1])
}

func TestBuildSimilarityGraph_SingleTokenSentenceConnectsToNothing(t *testing.T) {
	// log(1) = 0: a one-token sentence has no defined discount.
	sentences := []Sentence{
		sent(0, "", "shared"),
		sent(1, "", "shared", "context", "here"),
	}

	g := BuildSimilarityGraph(sentences)
	assert.Empty(t, g.adj[0])
	assert.Empty(t, g.adj[1])
}

func TestBuildSimilarityGraph_NoSelfLoops(t *testing.T) {
	sentences := []Sentence{
		sent(0, "", "same", "tokens", "here"),
		sent(1, "", "same", "tokens", "here"),
	}

	g := BuildSimilarityGraph(sentences)
	for i, edges := range g.adj {
		for _, e := range edges {
			assert.NotEqual(t, i, e.to)
		}
	}
}

func TestBuildSimilarityGraph_DuplicateSentencesScoreAlike(t *testing.T) {
	// Two sentences with identical token sets must come out with
	// near-identical rank: the similarity function is symmetric.
	sentences := []Sentence{
		sent(0, "", "project", "deadline", "friday"),
		sent(1, "", "budget", "review", "meeting", "monday"),
		sent(2, "", "project", "deadline", "friday"),
		sent(3, "", "lunch", "order", "pending"),
		sent(4, "", "budget", "meeting", "deadline"),
		sent(5, "", "project", "status", "update"),
		sent(6, "", "friday", "review", "status"),
		sent(7, "", "order", "update", "monday"),
		sent(8, "", "meeting", "project", "review"),
		sent(9, "", "status", "pending", "deadline"),
	}

	g := BuildSimilarityGraph(sentences)
	scores, info := Rank(g, 0.85, 100, 1e-6)
	require.True(t, info.Converged)

	assert.InDelta(t, scores[0], scores[2], 1e-6)
}

func TestAddEdge_IgnoresSelfLoopsAndZeroWeights(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 0, 1.0)
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, -1)

	assert.Empty(t, g.adj[0])
	assert.Empty(t, g.adj[1])
	assert.Zero(t, g.outWeight[0])
}
