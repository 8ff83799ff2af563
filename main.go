package main

import (
	"flag"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments"
	"reversi/game"
	"reversi/searcher"
	"reversi/tui"
)

func main() {
	budget := flag.Duration("budget", time.Second, "wall-clock search budget per machine move")
	seed := flag.Uint64("seed", 0, "rollout RNG seed (0 seeds from the clock)")
	layout := flag.String("layout", game.InitialLayout, "initial position, 64 characters of X/O/.")
	plain := flag.Bool("plain", false, "line-based console play instead of the TUI")
	experiment := flag.Bool("experiment", false, "run the budget-vs-strength experiment instead of playing")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *experiment {
		if err := experiments.RunBudgetExperiment(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	board, err := game.Parse(*layout)
	if err != nil {
		log.Fatal().Err(err).Msg("bad layout")
	}

	options := []searcher.Option{
		searcher.WithDuration(*budget),
		searcher.WithMetrics(),
	}
	if *seed != 0 {
		options = append(options, searcher.WithRand(searcher.NewRand(*seed)))
	}
	mcts := searcher.NewMCTS(options...)

	if *plain {
		human := engine.NewHumanPlayer(os.Stdin, os.Stdout)
		machine := engine.NewSearchPlayer(mcts)
		e := engine.NewWithBoard(board, human, machine, os.Stdout)
		if _, err := e.Run(); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
		return
	}

	// The TUI owns the terminal; keep logs out of its way.
	log.Logger = log.Level(zerolog.Disabled)
	if _, err := tea.NewProgram(tui.New(board, mcts)).Run(); err != nil {
		log.Fatal().Err(err).Msg("tui failed")
	}
}
