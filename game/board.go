package game

import (
	"fmt"
	"strings"
)

const (
	// BoardSize is the side length of the board.
	BoardSize = 8
	// BoardCells is the total number of cells.
	BoardCells = BoardSize * BoardSize
)

// InitialLayout is the standard Othello starting position, row-major.
const InitialLayout = "" +
	"........" +
	"........" +
	"........" +
	"...OX..." +
	"...XO..." +
	"........" +
	"........" +
	"........"

// Cell is the content of one board square.
type Cell byte

const (
	Empty Cell = iota
	Black
	White
)

// Char returns the text form of a cell: 'X' black, 'O' white, '.' empty.
func (c Cell) Char() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	case Empty:
		return '.'
	}
	panic("unknown cell")
}

func parseCell(chr byte) (Cell, error) {
	switch chr {
	case 'x', 'X':
		return Black, nil
	case 'o', 'O':
		return White, nil
	case '.':
		return Empty, nil
	}
	return Empty, fmt.Errorf("invalid cell character %q", chr)
}

// Board is one position of the game. By convention Black always denotes the
// side to move and White the opponent; perspectives are swapped between plies
// rather than tracking real-world colors. Board is a value type: copies are
// fully independent.
type Board struct {
	cells [BoardCells]Cell
}

// Parse builds a board from a 64-character row-major layout using the
// X/O/. alphabet (case-insensitive). Any other length or character is an
// error.
func Parse(layout string) (Board, error) {
	var b Board
	if len(layout) != BoardCells {
		return b, fmt.Errorf("layout must be %d characters, got %d", BoardCells, len(layout))
	}
	for i := 0; i < BoardCells; i++ {
		cell, err := parseCell(layout[i])
		if err != nil {
			return b, fmt.Errorf("layout index %d: %w", i, err)
		}
		b.cells[i] = cell
	}
	return b, nil
}

// MustParse is Parse for layouts known at compile time; a malformed layout is
// a programming error, not a runtime condition.
func MustParse(layout string) Board {
	b, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return b
}

// New returns the standard starting position.
func New() Board {
	return MustParse(InitialLayout)
}

// At returns the cell at column x, row y (zero-based).
func (b Board) At(x, y int) Cell {
	return b.cells[x+y*BoardSize]
}

func (b *Board) set(x, y int, c Cell) {
	b.cells[x+y*BoardSize] = c
}

func inBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// IsFull reports whether no cell is empty.
func (b Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// BlackFraction returns the fraction of all cells occupied by Black, in [0,1].
func (b Board) BlackFraction() float64 {
	return float64(b.Count(Black)) / BoardCells
}

// Place applies the mover's stone at column x, row y. The move is legal iff
// the square is in bounds, empty, and at least one of the 8 directions holds
// a contiguous run of one or more White stones immediately followed by a
// Black stone. On success the stone is placed, every qualifying run is
// flipped to Black, and Place returns true. On failure the board is unchanged
// and Place returns false; this is an ordinary outcome, the caller retries
// with different input.
func (b *Board) Place(x, y int) bool {
	if !inBounds(x, y) || b.At(x, y) != Empty {
		return false
	}

	b.set(x, y, Black)

	valid := false
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}

			n := 1
			blackFound := false
			for ; inBounds(x+n*dx, y+n*dy); n++ {
				cell := b.At(x+n*dx, y+n*dy)
				if cell == Black {
					blackFound = true
				}
				if cell != White {
					break
				}
			}
			if blackFound && n > 1 {
				valid = true
				for i := 1; i < n; i++ {
					b.set(x+i*dx, y+i*dy, Black)
				}
			}
		}
	}

	if !valid {
		b.set(x, y, Empty)
	}
	return valid
}

// Swapped returns a copy with Black and White relabeled; stone positions are
// untouched. Expresses a forced pass: the opponent becomes the mover.
func (b Board) Swapped() Board {
	for i, c := range b.cells {
		switch c {
		case Black:
			b.cells[i] = White
		case White:
			b.cells[i] = Black
		}
	}
	return b
}

// Successors returns every position reachable by one legal move of the
// current mover, scanning cells in row-major order. Each successor is
// perspective-swapped so that Black again denotes the side about to move.
// The result is empty when the mover has no legal move.
func (b Board) Successors() []Board {
	var boards []Board
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			tmp := b
			if tmp.Place(x, y) {
				boards = append(boards, tmp.Swapped())
			}
		}
	}
	return boards
}

// String returns the 64-character layout form; Parse(b.String()) reproduces b.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardCells)
	for _, c := range b.cells {
		sb.WriteByte(c.Char())
	}
	return sb.String()
}

// Render returns a bordered human-readable view with lettered columns and
// numbered rows.
func (b Board) Render() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < BoardSize; x++ {
		sb.WriteByte(byte('a' + x))
	}
	sb.WriteString("\n +")
	sb.WriteString(strings.Repeat("-", BoardSize))
	sb.WriteByte('\n')
	for y := 0; y < BoardSize; y++ {
		fmt.Fprintf(&sb, "%d|", y+1)
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(b.At(x, y).Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
