package ttt

import (
	"errors"
	"fmt"
	"strings"
)

const StartingPosition = "3/3/3"

var (
	ErrInvalidNotation = errors.New("invalid notation")
	ErrIllegalPosition = errors.New("illegal position")
)

// String notation of the board, much like FEN for chess:
//
//	<row 0>/<row 1>/<row 2>
//
// where every row lists its squares from column 0, 'x' is the human,
// 'o' is the AI and a digit is the number of consecutive empty squares.
//
// For example, the board
//
//	 O | O |
//	---|---|---
//	 X | X |
//	---|---|---
//	   |   |
//
// is written as:
//
//	oo1/xx1/3
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for row := range 3 {
		counter := 0
		for col := range 3 {
			switch c := b[row][col]; c {
			case Human, AI:
				if counter > 0 {
					builder.WriteByte('0' + byte(counter))
					counter = 0
				}
				if c == Human {
					builder.WriteByte('x')
				} else {
					builder.WriteByte('o')
				}
			default:
				counter++
			}
		}

		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}

		if row != 2 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// Create the board from given notation string, "startpos" is the empty board.
// Only the structure is checked, see Validate for the position legality.
func FromNotation(notation string) (Board, error) {
	var board Board

	notation = strings.TrimSpace(notation)
	if notation == "startpos" {
		notation = StartingPosition
	}

	rows := strings.Split(notation, "/")
	if len(rows) != 3 {
		return board, fmt.Errorf("%w: expected 3 rows separated by '/', got %d", ErrInvalidNotation, len(rows))
	}

	for row, str := range rows {
		col := 0
		digit := false
		for i, v := range str {
			switch {
			case v >= '1' && v <= '3':
				// Empty squares are counted by a single digit
				if digit {
					return board, fmt.Errorf("%w: consecutive digits in row %d at index %d", ErrInvalidNotation, row, i)
				}
				col += int(v - '0')
			case v == 'x' || v == 'o' || v == 'X' || v == 'O':
				if col < 3 {
					cell, _ := CellFromRune(v)
					board[row][col] = cell
				}
				col++
			default:
				return board, fmt.Errorf("%w: unexpected token %q in row %d at index %d", ErrInvalidNotation, v, row, i)
			}

			digit = v >= '1' && v <= '3'
			if col > 3 {
				return board, fmt.Errorf("%w: row %d has more than 3 squares", ErrInvalidNotation, row)
			}
		}

		if col != 3 {
			return board, fmt.Errorf("%w: row %d has %d squares, expected 3", ErrInvalidNotation, row, col)
		}
	}

	return board, nil
}

// Create the board from printed rows, each of exactly 3 characters
// ('X', 'O' or ' '), for example {"OO ", "XX ", "   "}
func FromRows(rows [3]string) (Board, error) {
	var board Board
	for row, str := range rows {
		runes := []rune(str)
		if len(runes) != 3 {
			return board, fmt.Errorf("%w: row %d is %q, expected 3 squares", ErrInvalidNotation, row, str)
		}

		for col, r := range runes {
			cell, ok := CellFromRune(r)
			if !ok {
				return board, fmt.Errorf("%w: unexpected square %q in row %d", ErrInvalidNotation, r, row)
			}
			board[row][col] = cell
		}
	}
	return board, nil
}

// Check if the board can be reached by alternating legal moves
func (b *Board) Validate() error {
	humans, ais := b.Count(Human), b.Count(AI)
	if diff := humans - ais; diff > 1 || diff < -1 {
		return fmt.Errorf("%w: %d human and %d ai marks", ErrIllegalPosition, humans, ais)
	}

	if IsWin(b, Human) && IsWin(b, AI) {
		return fmt.Errorf("%w: both sides have a winning line", ErrIllegalPosition)
	}

	return nil
}
