package ttt

// All 9 squares set
const _fullBitboard uint16 = 0b111111111

// 3x3 grid, addressed board[row][col]. It's a plain value,
// so copying a board is just an array copy.
type Board [3][3]Cell

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) At(m Move) Cell {
	return b[m.Row][m.Col]
}

// Put given cell on the square, no legality checks
func (b *Board) Set(m Move, c Cell) {
	b[m.Row][m.Col] = c
}

func (b *Board) IsEmpty(m Move) bool {
	return b[m.Row][m.Col] == Empty
}

// Number of squares occupied by given cell
func (b *Board) Count(c Cell) int {
	n := 0
	for row := range 3 {
		for col := range 3 {
			if b[row][col] == c {
				n++
			}
		}
	}
	return n
}

// Bitboard of given cell, bit i is set when the square with
// row-major index i holds that cell
func (b *Board) Bitboard(c Cell) uint16 {
	var bb uint16
	for row := range 3 {
		for col := range 3 {
			if b[row][col] == c {
				bb |= 1 << (row*3 + col)
			}
		}
	}
	return bb
}

// Whose turn it is, assuming the sides alternate and 'first' opened the game
func (b *Board) SideToMove(first Cell) Cell {
	if b.Count(first) > b.Count(first.Opponent()) {
		return first.Opponent()
	}
	return first
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}
