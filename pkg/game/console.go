package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/rs/zerolog"
)

const (
	_promptRow    = "Enter row (1-3): "
	_promptCol    = "Enter column (1-3): "
	_invalidInput = "Invalid input. Enter numbers between 1 and 3."
	_invalidMove  = "Invalid move. Try again."
	_humanTurn    = "Human's turn"
	_aiTurn       = "AI's turn"
	_aiWinsMsg    = "AI wins!"
	_humanWinsMsg = "Human wins!"
	_drawMsg      = "It's a draw!"
)

// Line based game loop, reads the human moves from 'in' and writes
// the board with the prompts to 'out'
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	logger   zerolog.Logger
	renderer *ttt.Renderer
}

func NewConsole(in io.Reader, out io.Writer, logger zerolog.Logger) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Use colored output for the board, nil restores the plain one
func (c *Console) SetRenderer(renderer *ttt.Renderer) {
	c.renderer = renderer
}

// Play the game until it's terminated. Returns an error if the input
// ends before that (wrapping io.ErrUnexpectedEOF) or the context is done.
func (c *Console) Run(ctx context.Context, g *Game) (ttt.Termination, error) {
	c.logger.Info().
		Stringer("first", g.First()).
		Str("position", boardNotation(g)).
		Stringer("engine", g.Engine()).
		Msg("game started")

	for {
		if err := ctx.Err(); err != nil {
			return ttt.TerminationNone, err
		}

		c.printBoard(g)

		if status := g.Status(); status != ttt.TerminationNone {
			c.println(resultMessage(status))
			c.logger.Info().
				Stringer("result", status).
				Int("moves", g.MoveCount()).
				Msg("game finished")
			return status, nil
		}

		if g.Turn() == ttt.Human {
			if err := c.humanTurn(g); err != nil {
				return ttt.TerminationNone, err
			}
			continue
		}

		c.println(_aiTurn)
		m, err := g.PlayAI()
		if err != nil {
			return ttt.TerminationNone, fmt.Errorf("ai move: %w", err)
		}

		result := g.LastSearch()
		c.logger.Info().
			Stringer("move", m).
			Int("score", result.Score).
			Uint64("nodes", result.Nodes).
			Uint64("cutoffs", result.Cutoffs).
			Int("time_ms", result.TimeMs).
			Msg("ai move")
	}
}

// Read one human move, invalid moves are reported and the turn is kept
func (c *Console) humanTurn(g *Game) error {
	c.println(_humanTurn)

	row, err := c.prompt(_promptRow)
	if err != nil {
		return err
	}
	// A bad row is rejected before asking for the column
	if _, err := parseCoordinate(row); err != nil {
		c.rejectInput(fmt.Errorf("row: %w", err), row, "")
		return nil
	}

	col, err := c.prompt(_promptCol)
	if err != nil {
		return err
	}

	m, err := ParseMove(row, col)
	if err != nil {
		c.rejectInput(err, row, col)
		return nil
	}

	err = g.PlayHuman(m)
	switch {
	case err == nil:
		c.logger.Debug().Stringer("move", m).Msg("human move")
	case errors.Is(err, ErrOccupied), errors.Is(err, ErrOutOfBounds):
		c.logger.Debug().Err(err).Msg("rejected move")
		c.println(_invalidMove)
	default:
		return fmt.Errorf("human move: %w", err)
	}
	return nil
}

func (c *Console) rejectInput(err error, row, col string) {
	c.logger.Debug().Err(err).Str("row", row).Str("col", col).Msg("rejected input")
	c.println(_invalidInput)
}

func (c *Console) prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("reading input: %w", io.ErrUnexpectedEOF)
	}
	return c.in.Text(), nil
}

func (c *Console) printBoard(g *Game) {
	board := g.Board()
	rows := ttt.Render(&board)
	if c.renderer != nil {
		rows = c.renderer.Render(&board)
	}
	for _, row := range rows {
		c.println(row)
	}
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}

func resultMessage(status ttt.Termination) string {
	switch status {
	case ttt.TerminationAIWon:
		return _aiWinsMsg
	case ttt.TerminationHumanWon:
		return _humanWinsMsg
	default:
		return _drawMsg
	}
}

func boardNotation(g *Game) string {
	board := g.Board()
	return board.Notation()
}
