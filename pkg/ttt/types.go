package ttt

import "fmt"

// State of a single square
type Cell uint8

const (
	Empty Cell = 0
	Human Cell = 1
	AI    Cell = 2
)

// Get the other side, Empty stays Empty
func (c Cell) Opponent() Cell {
	switch c {
	case Human:
		return AI
	case AI:
		return Human
	default:
		return Empty
	}
}

// Character used when printing the board
func (c Cell) Rune() rune {
	switch c {
	case Human:
		return 'X'
	case AI:
		return 'O'
	default:
		return ' '
	}
}

func (c Cell) String() string {
	switch c {
	case Human:
		return "human"
	case AI:
		return "ai"
	default:
		return "empty"
	}
}

// Create cell from a rune, accepts both upper and lower case marks
func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case 'x', 'X':
		return Human, true
	case 'o', 'O':
		return AI, true
	case ' ', '.', '-':
		return Empty, true
	default:
		return Empty, false
	}
}

// Square on the board, addressed by row and column (both 0..2)
type Move struct {
	Row int
	Col int
}

// Returned by the move selector, when there is no empty square left
var NoMove = Move{Row: -1, Col: -1}

// Create move from row-major index (0..8)
func MoveFromIndex(idx int) Move {
	return Move{Row: idx / 3, Col: idx % 3}
}

func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < 3 && m.Col >= 0 && m.Col < 3
}

// Row-major index of the square
func (m Move) Index() int {
	return m.Row*3 + m.Col
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
