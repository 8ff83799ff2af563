package game

import "fmt"

// ParseSquare converts algebraic notation ("a1" through "h8", case-insensitive)
// into zero-based column and row coordinates.
func ParseSquare(s string) (x, y int, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("square must be 2 characters, got %q", s)
	}
	col := s[0]
	if col >= 'A' && col <= 'Z' {
		col += 'a' - 'A'
	}
	x = int(col - 'a')
	y = int(s[1] - '1')
	if !inBounds(x, y) {
		return 0, 0, fmt.Errorf("square %q out of range", s)
	}
	return x, y, nil
}

// Square formats zero-based coordinates as algebraic notation.
func Square(x, y int) string {
	return string([]byte{byte('a' + x), byte('1' + y)})
}
