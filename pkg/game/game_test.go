package game

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/rs/zerolog"
)

func mustBoard(t *testing.T, rows ...string) ttt.Board {
	t.Helper()
	b, err := ttt.FromRows([3]string{rows[0], rows[1], rows[2]})
	if err != nil {
		t.Fatalf("FromRows(%q) failed: %v", rows, err)
	}
	return b
}

func mustGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := mustGame(t)
	if g.Turn() != ttt.Human {
		t.Errorf("Expected human to move first, got %v", g.Turn())
	}
	if g.Over() || g.MoveCount() != 0 {
		t.Errorf("Expected fresh game, got status %v with %d moves", g.Status(), g.MoveCount())
	}
	if !g.Engine().Options().Pruning {
		t.Error("Expected pruning to be on by default")
	}

	g = mustGame(t, WithAIFirst(), WithPruning(false))
	if g.Turn() != ttt.AI {
		t.Errorf("Expected AI to move first, got %v", g.Turn())
	}
	if g.Engine().Options().Pruning {
		t.Error("Expected pruning to be off")
	}

	engine := minimax.NewEngine(minimax.DefaultOptions().SetThreads(2))
	g = mustGame(t, WithEngine(engine))
	if g.Engine() != engine {
		t.Error("Expected the given engine to be used")
	}
}

func TestWithPruningOrder(t *testing.T) {
	cases := []struct {
		name  string
		order func(engine *minimax.Engine) []Option
	}{
		{"pruning before engine", func(e *minimax.Engine) []Option {
			return []Option{WithPruning(false), WithEngine(e)}
		}},
		{"pruning after engine", func(e *minimax.Engine) []Option {
			return []Option{WithEngine(e), WithPruning(false)}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shared := minimax.DefaultOptions().SetThreads(2)
			engine := minimax.NewEngine(shared)
			other := minimax.NewEngine(shared)

			g := mustGame(t, c.order(engine)...)
			if g.Engine() != engine {
				t.Fatal("Expected the given engine to be used")
			}
			if g.Engine().Options().Pruning {
				t.Error("Expected pruning to be off")
			}
			if g.Engine().Options().NThreads != 2 {
				t.Errorf("Expected the other options to be kept, got %v", g.Engine().Options())
			}
			if !shared.Pruning || !other.Options().Pruning {
				t.Error("Shared options were modified")
			}
		})
	}
}

func TestNewGameIllegalBoard(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
	}{
		{"too many human marks", []Option{WithBoard(mustBoard(t, "XX ", "   ", "   "))}},
		{"ai marks ahead of human opener", []Option{WithBoard(mustBoard(t, "O  ", "   ", "   "))}},
		{"human marks ahead of ai opener", []Option{WithAIFirst(), WithBoard(mustBoard(t, "X  ", "   ", "   "))}},
		{"both sides won", []Option{WithBoard(mustBoard(t, "XXX", "OOO", "   "))}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.opts...)
			if !errors.Is(err, ttt.ErrIllegalPosition) {
				t.Fatalf("Expected ErrIllegalPosition, got %v", err)
			}
		})
	}
}

func TestPlayHumanErrors(t *testing.T) {
	g := mustGame(t, WithBoard(mustBoard(t, "X  ", " O ", "   ")))

	if err := g.PlayHuman(ttt.Move{Row: 3, Col: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if err := g.PlayHuman(ttt.Move{Row: -1, Col: 1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if err := g.PlayHuman(ttt.Move{Row: 1, Col: 1}); !errors.Is(err, ErrOccupied) {
		t.Errorf("Expected ErrOccupied, got %v", err)
	}

	before := g.Board()
	if before != mustBoard(t, "X  ", " O ", "   ") {
		t.Fatalf("Board changed after rejected moves:\n%v", before.String())
	}

	if err := g.PlayHuman(ttt.Move{Row: 2, Col: 2}); err != nil {
		t.Fatalf("PlayHuman failed: %v", err)
	}
	if err := g.PlayHuman(ttt.Move{Row: 2, Col: 0}); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Expected ErrNotYourTurn, got %v", err)
	}
	if _, err := mustGame(t).PlayAI(); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Expected ErrNotYourTurn from AI on human's turn, got %v", err)
	}
}

func TestGameOver(t *testing.T) {
	g := mustGame(t, WithBoard(mustBoard(t, "XXX", "OO ", "   ")))
	if err := g.PlayHuman(ttt.Move{Row: 2, Col: 2}); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
	if _, err := g.PlayAI(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
	if g.Status() != ttt.TerminationHumanWon {
		t.Errorf("Expected human win, got %v", g.Status())
	}
}

func TestPlayAITakesWin(t *testing.T) {
	g := mustGame(t, WithBoard(mustBoard(t, "OO ", "XX ", "X  ")))
	if g.Turn() != ttt.AI {
		t.Fatalf("Expected AI to move, got %v", g.Turn())
	}

	m, err := g.PlayAI()
	if err != nil {
		t.Fatalf("PlayAI failed: %v", err)
	}
	if m != (ttt.Move{Row: 0, Col: 2}) {
		t.Errorf("Expected (0, 2) to be played, got %v", m)
	}
	if g.Status() != ttt.TerminationAIWon {
		t.Errorf("Expected AI win, got %v", g.Status())
	}
	if g.LastSearch().BestMove != m || g.LastSearch().Score != minimax.WinScore {
		t.Errorf("Unexpected search result: %v", g.LastSearch())
	}

	g.Reset()
	board := g.Board()
	if !board.IsEmpty(ttt.Move{Row: 0, Col: 0}) || g.MoveCount() != 0 || g.LastSearch().BestMove != ttt.NoMove {
		t.Errorf("Expected empty game after reset, got %d moves", g.MoveCount())
	}
}

func TestGameNeverLost(t *testing.T) {
	// Human always plays the first free square
	for _, opts := range [][]Option{nil, {WithAIFirst()}} {
		g := mustGame(t, opts...)
		for !g.Over() {
			if g.Turn() == ttt.AI {
				if _, err := g.PlayAI(); err != nil {
					t.Fatalf("PlayAI failed: %v", err)
				}
				continue
			}
			board := g.Board()
			moves := board.GenerateMoves()
			if err := g.PlayHuman(moves.Moves[0]); err != nil {
				t.Fatalf("PlayHuman failed: %v", err)
			}
		}

		if g.Status() == ttt.TerminationHumanWon {
			board := g.Board()
			t.Fatalf("AI lost (opener %v):\n%v", g.First(), board.String())
		}
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		row, col string
		want     ttt.Move
		ok       bool
	}{
		{"1", "1", ttt.Move{Row: 0, Col: 0}, true},
		{"3", "2", ttt.Move{Row: 2, Col: 1}, true},
		{" 2 ", "3\r", ttt.Move{Row: 1, Col: 2}, true},
		{"0", "1", ttt.NoMove, false},
		{"4", "1", ttt.NoMove, false},
		{"1", "-1", ttt.NoMove, false},
		{"a", "1", ttt.NoMove, false},
		{"", "", ttt.NoMove, false},
	}

	for _, c := range cases {
		m, err := ParseMove(c.row, c.col)
		if c.ok != (err == nil) {
			t.Errorf("ParseMove(%q, %q) error = %v, expected ok=%v", c.row, c.col, err, c.ok)
			continue
		}
		if !c.ok && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseMove(%q, %q) expected ErrInvalidInput, got %v", c.row, c.col, err)
		}
		if m != c.want {
			t.Errorf("ParseMove(%q, %q) = %v, expected %v", c.row, c.col, m, c.want)
		}
	}
}

func TestParseMoveLine(t *testing.T) {
	for line, want := range map[string]ttt.Move{
		"1 1":    {Row: 0, Col: 0},
		"2,3":    {Row: 1, Col: 2},
		" 3 , 1": {Row: 2, Col: 0},
	} {
		m, err := ParseMoveLine(line)
		if err != nil || m != want {
			t.Errorf("ParseMoveLine(%q) = %v, %v; expected %v", line, m, err, want)
		}
	}

	for _, line := range []string{"", "1", "1 2 3", "x y", "0 0"} {
		if _, err := ParseMoveLine(line); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseMoveLine(%q) expected ErrInvalidInput, got %v", line, err)
		}
	}
}

// Every square in row-major order, as 1-based row and column lines
func allSquaresInput() string {
	var sb strings.Builder
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			sb.WriteString(string(rune('0'+row)) + "\n" + string(rune('0'+col)) + "\n")
		}
	}
	return sb.String()
}

func TestConsoleFullGame(t *testing.T) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	console := NewConsole(strings.NewReader(allSquaresInput()), out, zerolog.New(logs))

	status, err := console.Run(context.Background(), mustGame(t))
	if err != nil {
		t.Fatalf("Run failed: %v\nOutput:\n%s", err, out.String())
	}

	transcript := out.String()
	switch status {
	case ttt.TerminationAIWon:
		if !strings.HasSuffix(transcript, "AI wins!\n") {
			t.Errorf("Expected AI win message, got:\n%s", transcript)
		}
	case ttt.TerminationDraw:
		if !strings.HasSuffix(transcript, "It's a draw!\n") {
			t.Errorf("Expected draw message, got:\n%s", transcript)
		}
	default:
		t.Fatalf("Unexpected result %v:\n%s", status, transcript)
	}

	for _, want := range []string{"Human's turn", "AI's turn", "Enter row (1-3): ", "Enter column (1-3): ", " X |", "---|---|---"} {
		if !strings.Contains(transcript, want) {
			t.Errorf("Expected %q in the output", want)
		}
	}
	if !strings.Contains(logs.String(), `"message":"ai move"`) || !strings.Contains(logs.String(), `"message":"game finished"`) {
		t.Errorf("Expected ai move and game finished log entries, got:\n%s", logs.String())
	}
}

func TestConsoleInvalidInput(t *testing.T) {
	// bad row, row out of range, bad column, then the center twice
	input := "abc\n" + "4\n" + "1\nx\n" + "2\n2\n" + "2\n2\n"
	out := &bytes.Buffer{}
	console := NewConsole(strings.NewReader(input), out, zerolog.Nop())

	status, err := console.Run(context.Background(), mustGame(t))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Expected ErrUnexpectedEOF, got %v", err)
	}
	if status != ttt.TerminationNone {
		t.Errorf("Expected no termination, got %v", status)
	}

	transcript := out.String()
	if n := strings.Count(transcript, _invalidInput); n != 3 {
		t.Errorf("Expected 3 invalid input messages, got %d:\n%s", n, transcript)
	}
	// every line is read as a row, unless the row before it was valid
	if n := strings.Count(transcript, _promptRow); n != 6 {
		t.Errorf("Expected 6 row prompts, got %d:\n%s", n, transcript)
	}
	if n := strings.Count(transcript, _promptCol); n != 3 {
		t.Errorf("Expected 3 column prompts, got %d:\n%s", n, transcript)
	}
	// AI answers the center with the first corner, so replaying the center is rejected
	if n := strings.Count(transcript, _invalidMove); n != 1 {
		t.Errorf("Expected 1 invalid move message, got %d:\n%s", n, transcript)
	}
	if n := strings.Count(transcript, _aiTurn); n != 1 {
		t.Errorf("Expected 1 AI turn, got %d", n)
	}
}

func TestConsoleBadRowSkipsColumn(t *testing.T) {
	out := &bytes.Buffer{}
	console := NewConsole(strings.NewReader("abc\n"), out, zerolog.Nop())

	_, err := console.Run(context.Background(), mustGame(t))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Expected ErrUnexpectedEOF, got %v", err)
	}

	transcript := out.String()
	if strings.Contains(transcript, _promptCol) {
		t.Errorf("Column was prompted after an invalid row:\n%s", transcript)
	}
	want := _promptRow + _invalidInput + "\n"
	if !strings.Contains(transcript, want) {
		t.Errorf("Expected %q right after the row prompt, got:\n%s", want, transcript)
	}
}

func TestConsoleFinishedGame(t *testing.T) {
	g := mustGame(t, WithBoard(mustBoard(t, "XXO", "OOX", "XOX")))
	out := &bytes.Buffer{}

	status, err := NewConsole(strings.NewReader(""), out, zerolog.Nop()).Run(context.Background(), g)
	if err != nil || status != ttt.TerminationDraw {
		t.Fatalf("Expected draw without error, got %v, %v", status, err)
	}

	want := " X | X | O\n---|---|---\n O | O | X\n---|---|---\n X | O | X\nIt's a draw!\n"
	if out.String() != want {
		t.Errorf("Unexpected output:\n%q\nexpected:\n%q", out.String(), want)
	}
}

func TestConsoleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	_, err := NewConsole(strings.NewReader(allSquaresInput()), out, zerolog.Nop()).Run(ctx, mustGame(t))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got:\n%s", out.String())
	}
}

func TestSearchAIKeepsGame(t *testing.T) {
	g := mustGame(t, WithAIFirst())

	result, err := g.SearchAI()
	if err != nil {
		t.Fatalf("SearchAI failed: %v", err)
	}
	if g.MoveCount() != 0 || g.Turn() != ttt.AI {
		t.Fatalf("SearchAI modified the game, %d moves", g.MoveCount())
	}
	if result.BestMove != (ttt.Move{Row: 0, Col: 0}) || result.Score != minimax.DrawScore {
		t.Errorf("Expected (0, 0) with draw score, got %v", result)
	}

	if err := g.ApplyAI(result); err != nil {
		t.Fatalf("ApplyAI failed: %v", err)
	}
	if err := g.ApplyAI(result); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("Expected ErrNotYourTurn on second apply, got %v", err)
	}
	board := g.Board()
	if board.At(ttt.Move{Row: 0, Col: 0}) != ttt.AI || g.LastSearch().BestMove != result.BestMove {
		t.Errorf("Expected AI mark at (0, 0):\n%v", board.String())
	}
}
