package experiments

import (
	"time"

	"reversi/searcher"
)

// AgentConfig describes one MCTS configuration under test.
type AgentConfig struct {
	ID       int
	Duration time.Duration
	Episodes int
	Seed     uint64
}

func (c AgentConfig) newMCTS() *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics()}
	if c.Duration > 0 {
		options = append(options, searcher.WithDuration(c.Duration))
	}
	if c.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(c.Episodes))
	}
	if c.Seed != 0 {
		options = append(options, searcher.WithRand(searcher.NewRand(c.Seed)))
	}
	return searcher.NewMCTS(options...)
}

// GameRecord summarizes one self-play game.
type GameRecord struct {
	Game     int
	Agent1   int // AgentConfig.ID, moves first
	Agent2   int // AgentConfig.ID
	Winner   int // winning AgentConfig.ID, -1 for a draw
	XCount   int
	OCount   int
	Moves    int
	Duration time.Duration
}

// MoveRecord captures the search metrics of one move within a game.
type MoveRecord struct {
	Game  int
	Step  int
	Agent int // AgentConfig.ID
	searcher.SearchMetric
}
