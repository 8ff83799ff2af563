package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"reversi/game"
	"reversi/searcher"
)

const (
	// NumGames per matchup.
	NumGames = 10
	// BaselineBudget is the reference time budget per move.
	BaselineBudget = 50 * time.Millisecond
)

// RunBudgetExperiment plays agents with growing time budgets against the
// baseline agent and records the outcomes. More simulations per move should
// translate into a higher win rate; the records make that measurable.
func RunBudgetExperiment() error {
	baseline := AgentConfig{ID: 0, Duration: BaselineBudget}
	configs := []AgentConfig{
		{ID: 1, Duration: BaselineBudget},
		{ID: 2, Duration: 2 * BaselineBudget},
		{ID: 3, Duration: 4 * BaselineBudget},
		{ID: 4, Duration: 8 * BaselineBudget},
	}

	matchUps := [][2]AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]AgentConfig{baseline, config})
	}

	return runExperiment("budget", append(configs, baseline), matchUps)
}

func runExperiment(name string, configs []AgentConfig, matchUps [][2]AgentConfig) error {
	writer, err := NewWriter(name)
	if err != nil {
		return err
	}
	log.Info().Str("experiment", name).Str("run", writer.RunID().String()).Msg("starting experiment")

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	count := 0
	gameRecords := []GameRecord{}
	moveRecords := []MoveRecord{}
	for _, matchUp := range matchUps {
		for i := 0; i < NumGames; i++ {
			count++
			// Alternate the starting agent between games
			pair := matchUp
			if i%2 == 1 {
				pair[0], pair[1] = pair[1], pair[0]
			}

			record, moves := playGame(count, pair)
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().
				Int("game", count).
				Int("agent1", record.Agent1).
				Int("agent2", record.Agent2).
				Int("winner", record.Winner).
				Msg("game over")
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Int("games", count).Msg("experiment complete")
	return nil
}

// playGame runs one self-play game between the two configured agents;
// pair[0] moves first.
func playGame(id int, pair [2]AgentConfig) (GameRecord, []MoveRecord) {
	agents := [2]*searcher.MCTS{pair[0].newMCTS(), pair[1].newMCTS()}

	start := time.Now()
	board := game.New()
	turn := 0
	passes := 0
	step := 0
	var moves []MoveRecord

	for passes < 2 && !board.IsFull() {
		next, metric := agents[turn].FindNextBoard(board)
		step++
		moves = append(moves, MoveRecord{
			Game:         id,
			Step:         step,
			Agent:        pair[turn].ID,
			SearchMetric: metric,
		})

		// Only a pass returns the bare perspective swap
		if next == board.Swapped() {
			passes++
		} else {
			passes = 0
		}
		board = next
		turn = 1 - turn
	}

	// The final board is normalized for agents[turn]; read counts from the
	// first mover's perspective.
	view := board
	if turn == 1 {
		view = view.Swapped()
	}
	xCount := view.Count(game.Black)
	oCount := view.Count(game.White)

	winner := -1
	if xCount > oCount {
		winner = pair[0].ID
	} else if oCount > xCount {
		winner = pair[1].ID
	}

	return GameRecord{
		Game:     id,
		Agent1:   pair[0].ID,
		Agent2:   pair[1].ID,
		Winner:   winner,
		XCount:   xCount,
		OCount:   oCount,
		Moves:    step,
		Duration: time.Since(start),
	}, moves
}
