package ttt

type Termination int

const (
	TerminationNone     Termination = 0
	TerminationAIWon    Termination = 1
	TerminationHumanWon Termination = 2
	TerminationDraw     Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationAIWon:
		return "ai won"
	case TerminationHumanWon:
		return "human won"
	case TerminationDraw:
		return "draw"
	default:
		return "none"
	}
}

// Rows, columns and both diagonals as bitboards (bit = row*3 + col),
// the order matters for WinningLine
var _winningBitboardPatterns = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// True if any of the 8 lines is fully occupied by the player
func IsWin(b *Board, player Cell) bool {
	bb := b.Bitboard(player)
	won := false
	for _, pattern := range _winningBitboardPatterns {
		if bb&pattern == pattern {
			won = true
		}
	}
	return won
}

// True if there is no empty square left. Check IsWin for both sides first,
// a full board with a line is a win, not a draw.
func IsDraw(b *Board) bool {
	return b.Bitboard(Empty) == 0
}

// First line (rows, columns, diagonals) owned by the player
func WinningLine(b *Board, player Cell) ([3]Move, bool) {
	bb := b.Bitboard(player)
	for _, pattern := range _winningBitboardPatterns {
		if bb&pattern != pattern {
			continue
		}

		var line [3]Move
		n := 0
		for i := range 9 {
			if pattern&(1<<i) != 0 {
				line[n] = MoveFromIndex(i)
				n++
			}
		}
		return line, true
	}
	return [3]Move{}, false
}

// Evaluate the termination, AI win is checked first, then human win, then draw
func (b *Board) Termination() Termination {
	if IsWin(b, AI) {
		return TerminationAIWon
	}
	if IsWin(b, Human) {
		return TerminationHumanWon
	}
	if IsDraw(b) {
		return TerminationDraw
	}
	return TerminationNone
}

func (b *Board) IsTerminated() bool {
	return b.Termination() != TerminationNone
}
