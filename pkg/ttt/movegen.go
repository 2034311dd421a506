package ttt

import "math/bits"

// Generate all empty squares, row 0 first, then 1 and 2,
// within a row column 0 first
func (b *Board) GenerateMoves() *MoveList {
	movelist := NewMoveList()

	free := uint(_fullBitboard ^ (b.Bitboard(Human) | b.Bitboard(AI)))
	for free != 0 {
		movelist.AppendMove(MoveFromIndex(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}
