package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Parse 1-based row and column, as typed by the human
func ParseMove(row, col string) (ttt.Move, error) {
	r, err := parseCoordinate(row)
	if err != nil {
		return ttt.NoMove, fmt.Errorf("row: %w", err)
	}

	c, err := parseCoordinate(col)
	if err != nil {
		return ttt.NoMove, fmt.Errorf("column: %w", err)
	}

	return ttt.Move{Row: r - 1, Col: c - 1}, nil
}

// Parse "<row> <column>" (or "<row>,<column>"), both 1-based
func ParseMoveLine(line string) (ttt.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(fields) != 2 {
		return ttt.NoMove, fmt.Errorf("%w: expected row and column, got %q", ErrInvalidInput, line)
	}
	return ParseMove(fields[0], fields[1])
}

func parseCoordinate(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	if v < 1 || v > 3 {
		return 0, fmt.Errorf("%w: %d is not between 1 and 3", ErrInvalidInput, v)
	}
	return v, nil
}
