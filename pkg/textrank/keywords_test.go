package textrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords_RanksCentralTokensHigher(t *testing.T) {
	// "pipeline" co-occurs with everything; "lunch" appears once at the end.
	tokens := []string{
		"pipeline", "ranking", "pipeline", "graph",
		"pipeline", "scores", "graph", "ranking",
		"pipeline", "lunch",
	}

	keywords, info := ExtractKeywords(tokens, 3, 10, testDamping, testMaxIter, testEpsilon)
	require.NotEmpty(t, keywords)
	assert.True(t, info.Converged)

	assert.Equal(t, "pipeline", keywords[0].Token)

	rank := make(map[string]int)
	for i, kw := range keywords {
		rank[kw.Token] = i
	}
	assert.Less(t, rank["graph"], rank["lunch"])
}

func TestExtractKeywords_NoDuplicates(t *testing.T) {
	tokens := []string{"alpha", "beta", "alpha", "beta", "alpha", "gamma"}

	keywords, _ := ExtractKeywords(tokens, 2, 10, testDamping, testMaxIter, testEpsilon)

	seen := make(map[string]bool)
	for _, kw := range keywords {
		assert.False(t, seen[kw.Token], "duplicate keyword %q", kw.Token)
		seen[kw.Token] = true
	}
}

func TestExtractKeywords_TopKLimit(t *testing.T) {
	tokens := []string{"a1", "b2", "c3", "d4", "e5", "a1", "b2"}

	keywords, _ := ExtractKeywords(tokens, 3, 2, testDamping, testMaxIter, testEpsilon)
	assert.Len(t, keywords, 2)
}

func TestExtractKeywords_ScoresDescending(t *testing.T) {
	tokens := []string{
		"alpha", "beta", "gamma", "alpha", "delta",
		"beta", "alpha", "gamma", "epsilon", "alpha",
	}

	keywords, _ := ExtractKeywords(tokens, 4, 10, testDamping, testMaxIter, testEpsilon)
	for i := 1; i < len(keywords); i++ {
		assert.GreaterOrEqual(t, keywords[i-1].Score, keywords[i].Score)
	}
}

func TestExtractKeywords_TieBreaksByFirstOccurrence(t *testing.T) {
	// Window 2 over four distinct tokens builds the path graph
	// first-second-third-fourth. The two middle tokens score identically by
	// symmetry, as do the two ends, so ordering inside each tier falls back
	// to stream position.
	tokens := []string{"first", "second", "third", "fourth"}

	keywords, _ := ExtractKeywords(tokens, 2, 4, testDamping, testMaxIter, testEpsilon)
	require.Len(t, keywords, 4)
	assert.Equal(t, "second", keywords[0].Token)
	assert.Equal(t, "third", keywords[1].Token)
	assert.Equal(t, "first", keywords[2].Token)
	assert.Equal(t, "fourth", keywords[3].Token)
}

func TestExtractKeywords_EmptyStream(t *testing.T) {
	keywords, info := ExtractKeywords(nil, 5, 6, testDamping, testMaxIter, testEpsilon)
	assert.Nil(t, keywords)
	assert.True(t, info.Converged)
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	tokens := []string{
		"graph", "ranking", "scores", "graph", "window",
		"ranking", "tokens", "graph", "scores", "window",
		"tokens", "ranking", "graph", "window", "scores",
	}

	first, _ := ExtractKeywords(tokens, 5, 6, testDamping, testMaxIter, testEpsilon)
	second, _ := ExtractKeywords(tokens, 5, 6, testDamping, testMaxIter, testEpsilon)
	assert.Equal(t, first, second)
}
