package textrank

import "math"

// RankInfo reports how a ranking run ended. Non-convergence is not an
// error: the last iterate is still the best available score set and callers
// may surface the condition as an advisory.
type RankInfo struct {
	Iterations int
	Converged  bool
}

// Rank runs the damped random-walk fixed-point iteration over the graph and
// returns one importance score per node.
//
// Each pass computes, from the previous pass's scores only,
//
//	score(i) = (1-d)/N + d * Σ_j weight(j,i)/outWeight(j) * score(j)
//
// and stops when the largest absolute score change falls below epsilon or
// maxIterations is reached. Isolated nodes keep the (1-d)/N baseline.
// Iteration order is by node index, so results are deterministic.
func Rank(g *Graph, damping float64, maxIterations int, epsilon float64) ([]float64, RankInfo) {
	n := g.Len()
	if n == 0 {
		return nil, RankInfo{Converged: true}
	}

	base := (1 - damping) / float64(n)

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / float64(n)
	}
	next := make([]float64, n)

	info := RankInfo{}
	for iter := 0; iter < maxIterations; iter++ {
		info.Iterations = iter + 1

		for i := 0; i < n; i++ {
			sum := 0.0
			for _, e := range g.adj[i] {
				if g.outWeight[e.to] > 0 {
					sum += e.weight / g.outWeight[e.to] * scores[e.to]
				}
			}
			next[i] = base + damping*sum
		}

		delta := 0.0
		for i := 0; i < n; i++ {
			if d := math.Abs(next[i] - scores[i]); d > delta {
				delta = d
			}
		}
		scores, next = next, scores

		if delta < epsilon {
			info.Converged = true
			break
		}
	}

	return scores, info
}
