package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"reversi/game"
	"reversi/searcher"
)

// Player decides one turn. The board passed to Act is normalized so that
// Black denotes the side to act; the returned board is normalized for the
// next mover. passed reports that the player had no legal move and the
// returned board is just the perspective swap.
type Player interface {
	Act(b game.Board) (next game.Board, passed bool, err error)
}

// HumanPlayer reads moves in algebraic notation ("d3") from in, re-prompting
// on malformed or illegal input, and passes automatically when no legal move
// exists.
type HumanPlayer struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *HumanPlayer) Act(b game.Board) (game.Board, bool, error) {
	if len(b.Successors()) == 0 {
		fmt.Fprintln(p.out, "No legal move, passing.")
		return b.Swapped(), true, nil
	}

	for {
		fmt.Fprint(p.out, "move? ")
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return b, false, err
			}
			return b, false, io.ErrUnexpectedEOF
		}
		input := strings.TrimSpace(p.scanner.Text())
		x, y, err := game.ParseSquare(input)
		if err != nil {
			fmt.Fprintf(p.out, "Bad square %q, try again.\n", input)
			continue
		}
		if !b.Place(x, y) {
			fmt.Fprintf(p.out, "Illegal move %s, try again.\n", input)
			continue
		}
		return b.Swapped(), false, nil
	}
}

// SearchPlayer wraps an MCTS searcher as an engine player.
type SearchPlayer struct {
	mcts *searcher.MCTS
}

func NewSearchPlayer(mcts *searcher.MCTS) *SearchPlayer {
	return &SearchPlayer{mcts: mcts}
}

func (p *SearchPlayer) Act(b game.Board) (game.Board, bool, error) {
	next, metric := p.mcts.FindNextBoard(b)
	// A legal move always adds a stone, so only a pass returns the bare swap.
	passed := next == b.Swapped()
	if !metric.ShortCircuited {
		log.Info().
			Int("episodes", metric.Episodes).
			Dur("duration", metric.Duration).
			Float64("expectedOccupation", metric.ExpectedOccupation).
			Msg("search complete")
	}
	return next, passed, nil
}
