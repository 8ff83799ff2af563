package searcher

import "math"

// Hyperparameters for MCTS

// ExplorationConst weights the UCB1 exploration bonus.
const ExplorationConst = math.Sqrt2

// minVisitsToExpand delays expansion until a node has fed at least one
// rollout of its own: a lazy-expansion policy, the first layer of children
// is only materialized on the second visit.
const minVisitsToExpand = 1

// ucb1 scores a child from its mean value and visit count, with lnN the
// natural log of the parent's visit count. An unvisited child scores +Inf so
// every unvisited sibling is tried before any visited one is revisited.
func ucb1(mean float64, visits int, lnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return mean + ExplorationConst*math.Sqrt(lnN/float64(visits))
}
