package textrank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDamping = 0.85
	testMaxIter = 100
	testEpsilon = 1e-6
)

func TestRank_EmptyGraph(t *testing.T) {
	scores, info := Rank(NewGraph(0), testDamping, testMaxIter, testEpsilon)
	assert.Nil(t, scores)
	assert.True(t, info.Converged)
}

func TestRank_IsolatedNodesKeepBaseline(t *testing.T) {
	g := NewGraph(4)
	g.AddEdge(0, 1, 1.0)
	// Nodes 2 and 3 have no edges.

	scores, info := Rank(g, testDamping, testMaxIter, testEpsilon)
	require.Len(t, scores, 4)
	assert.True(t, info.Converged)

	base := (1 - testDamping) / 4.0
	assert.InDelta(t, base, scores[2], 1e-9)
	assert.InDelta(t, base, scores[3], 1e-9)
	// Connected nodes accumulate mass above the baseline.
	assert.Greater(t, scores[0], base)
	assert.Greater(t, scores[1], base)
}

func TestRank_SymmetricGraphGivesEqualScores(t *testing.T) {
	// 0 and 2 are structurally identical around the hub 1.
	g := NewGraph(3)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(2, 1, 1.0)

	scores, _ := Rank(g, testDamping, testMaxIter, testEpsilon)
	assert.InDelta(t, scores[0], scores[2], testEpsilon)
	assert.Greater(t, scores[1], scores[0])
}

func TestRank_ScoresSumToApproximatelyOne(t *testing.T) {
	g := NewGraph(5)
	g.AddEdge(0, 1, 2.0)
	g.AddEdge(1, 2, 1.0)
	g.AddEdge(2, 3, 0.5)
	g.AddEdge(3, 4, 1.5)
	g.AddEdge(4, 0, 1.0)

	scores, info := Rank(g, testDamping, testMaxIter, testEpsilon)
	require.True(t, info.Converged)

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
}

func TestRank_HigherWeightAttractsMoreMass(t *testing.T) {
	// Node 1 is tied to 0 ten times more strongly than node 2 is.
	g := NewGraph(3)
	g.AddEdge(0, 1, 10.0)
	g.AddEdge(0, 2, 1.0)

	scores, _ := Rank(g, testDamping, testMaxIter, testEpsilon)
	assert.Greater(t, scores[1], scores[2])
}

func TestRank_NonConvergenceReturnsLastIterate(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 1.0)

	// One iteration cannot reach a 1e-12 epsilon from the uniform start.
	scores, info := Rank(g, testDamping, 1, 1e-12)
	require.Len(t, scores, 3)
	assert.False(t, info.Converged)
	assert.Equal(t, 1, info.Iterations)
	for _, s := range scores {
		assert.False(t, math.IsNaN(s))
		assert.Greater(t, s, 0.0)
	}
}

func TestRank_Deterministic(t *testing.T) {
	build := func() *Graph {
		g := NewGraph(6)
		g.AddEdge(0, 1, 1.0)
		g.AddEdge(1, 2, 2.0)
		g.AddEdge(2, 3, 3.0)
		g.AddEdge(3, 4, 1.0)
		g.AddEdge(4, 5, 2.0)
		g.AddEdge(5, 0, 1.0)
		g.AddEdge(0, 3, 0.5)
		return g
	}

	first, _ := Rank(build(), testDamping, testMaxIter, testEpsilon)
	second, _ := Rank(build(), testDamping, testMaxIter, testEpsilon)
	assert.Equal(t, first, second)
}
