package engine

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"reversi/game"
)

// Engine runs a local game between two players. The board is kept normalized
// for the side about to act and rendered in the first player's perspective,
// so X always marks the first player's stones.
type Engine struct {
	board   game.Board
	players [2]Player
	out     io.Writer
}

// Result holds the final stone counts from the first player's perspective.
type Result struct {
	X int
	O int
}

// Winner returns "X", "O", or "" for a draw.
func (r Result) Winner() string {
	switch {
	case r.X > r.O:
		return "X"
	case r.O > r.X:
		return "O"
	}
	return ""
}

// New creates an engine on the standard starting position with the first
// player to move.
func New(first, second Player, out io.Writer) *Engine {
	return NewWithBoard(game.New(), first, second, out)
}

// NewWithBoard starts from an arbitrary position, normalized for the first
// player.
func NewWithBoard(b game.Board, first, second Player, out io.Writer) *Engine {
	return &Engine{
		board:   b,
		players: [2]Player{first, second},
		out:     out,
	}
}

// Run alternates the players until the board is full or both pass in a row,
// then reports the final counts.
func (e *Engine) Run() (Result, error) {
	turn := 0
	passes := 0

	e.display(turn)
	for passes < 2 && !e.board.IsFull() {
		next, passed, err := e.players[turn].Act(e.board)
		if err != nil {
			return Result{}, fmt.Errorf("player %d: %w", turn+1, err)
		}
		if passed {
			passes++
			log.Info().Int("player", turn+1).Msg("forced pass")
		} else {
			passes = 0
		}
		e.board = next
		turn = 1 - turn
		e.display(turn)
	}

	result := e.result(turn)
	log.Info().
		Int("x", result.X).
		Int("o", result.O).
		Str("winner", result.Winner()).
		Msg("game over")
	fmt.Fprintf(e.out, "Game over. X: %d, O: %d\n", result.X, result.O)
	if w := result.Winner(); w != "" {
		fmt.Fprintf(e.out, "%s wins!\n", w)
	} else {
		fmt.Fprintln(e.out, "Draw.")
	}
	return result, nil
}

// display renders the board in the first player's perspective; turn is the
// index of the side the board is currently normalized for.
func (e *Engine) display(turn int) {
	view := e.board
	if turn == 1 {
		view = view.Swapped()
	}
	fmt.Fprint(e.out, view.Render())
}

func (e *Engine) result(turn int) Result {
	view := e.board
	if turn == 1 {
		view = view.Swapped()
	}
	return Result{
		X: view.Count(game.Black),
		O: view.Count(game.White),
	}
}
