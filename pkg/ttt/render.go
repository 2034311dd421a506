package ttt

import (
	"strings"

	"github.com/muesli/termenv"
)

const _rowSeparator = "---|---|---"

// Display rows of the board, for example:
//
//	 X | O |
//	---|---|---
//	   | X |
//	---|---|---
//	 O |   |
func Render(b *Board) []string {
	return render(b, func(m Move, c Cell) string {
		return string(c.Rune())
	})
}

func (b *Board) String() string {
	return strings.Join(Render(b), "\n")
}

func render(b *Board, square func(Move, Cell) string) []string {
	rows := make([]string, 0, 5)
	for row := range 3 {
		cells := make([]string, 3)
		for col := range 3 {
			m := Move{Row: row, Col: col}
			cells[col] = square(m, b.At(m))
		}
		rows = append(rows, " "+strings.Join(cells, " | "))
		if row < 2 {
			rows = append(rows, _rowSeparator)
		}
	}
	return rows
}

// Colored board renderer, with the Ascii profile the output
// is exactly the same as Render's
type Renderer struct {
	output     *termenv.Output
	humanColor termenv.Color
	aiColor    termenv.Color
}

func NewRenderer(output *termenv.Output) *Renderer {
	return &Renderer{
		output:     output,
		humanColor: output.Color("#5fafff"),
		aiColor:    output.Color("#ff5f87"),
	}
}

// Render the board, marks are colored and the winning line (if any) is highlighted
func (r *Renderer) Render(b *Board) []string {
	var winning [3]Move
	won := false
	switch b.Termination() {
	case TerminationAIWon:
		winning, won = WinningLine(b, AI)
	case TerminationHumanWon:
		winning, won = WinningLine(b, Human)
	}

	return render(b, func(m Move, c Cell) string {
		style := r.output.String(string(c.Rune()))
		switch c {
		case Human:
			style = style.Foreground(r.humanColor).Bold()
		case AI:
			style = style.Foreground(r.aiColor).Bold()
		}

		if won && (winning[0] == m || winning[1] == m || winning[2] == m) {
			style = style.Reverse()
		}
		return style.String()
	})
}
