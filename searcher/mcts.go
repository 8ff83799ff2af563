package searcher

import (
	"time"

	"reversi/game"
)

type Option func(m *MCTS)

// MCTS chooses a move by Monte Carlo tree search: repeated UCB1 descent,
// random rollout, lazy expansion and backpropagation until the budget
// elapses. The search is single-threaded and the tree is discarded after
// every decision; nothing survives across calls.
type MCTS struct {
	duration time.Duration
	episodes int
	rng      Rand
	metrics  Collector
}

// WithDuration sets the wall-clock budget per decision. The budget is polled
// once per iteration; an iteration is never interrupted mid-flight.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes runs a fixed number of iterations instead of a wall-clock
// budget, which makes searches reproducible under a fixed seed.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithRand substitutes the uniform source used by rollouts.
func WithRand(rng Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		rng:     newTimeRand(),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindNextBoard returns the position after the mover's chosen move. The input
// must be normalized (Black to move) and must not be a full board. A mover
// with no legal move passes, returning the perspective swap directly; a single
// legal move is returned without searching. Otherwise the most-visited
// immediate successor after the budget wins.
func (m *MCTS) FindNextBoard(b game.Board) (game.Board, SearchMetric) {
	m.metrics.Start()

	boards := b.Successors()
	switch len(boards) {
	case 0: // Forced pass
		m.metrics.SetShortCircuit(true)
		return b.Swapped(), m.metrics.Complete()
	case 1: // Forced move
		m.metrics.SetShortCircuit(true)
		return boards[0], m.metrics.Complete()
	}

	root := newNode(b, black, nil)
	root.expand()

	if m.episodes > 0 {
		m.iterate(root)
	} else {
		m.countdown(root)
	}

	m.metrics.SetRootStats(root.visits, 1-root.mean)
	return root.mostVisitedChild().board, m.metrics.Complete()
}

func (m *MCTS) iterate(root *node) {
	for i := 0; i < m.episodes; i++ {
		m.simulate(root)
		m.metrics.AddEpisode()
	}
}

func (m *MCTS) countdown(root *node) {
	start := time.Now()
	for time.Since(start) < m.duration {
		m.simulate(root)
		m.metrics.AddEpisode()
	}
}

// simulate runs one search iteration: descend by UCB1 to a leaf, roll out
// from it (which backpropagates the outcome), then expand it.
func (m *MCTS) simulate(root *node) {
	n := root
	for !n.isLeaf() {
		n = n.maxUCBChild()
	}
	n.rollout(m.rng)
	n.expand()
}
