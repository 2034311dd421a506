// Package game drives a human versus AI tic-tac-toe game around the search
// engine: it owns the board between turns, validates human moves and asks
// the engine for the AI replies.
package game

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrOutOfBounds  = errors.New("move out of bounds")
	ErrOccupied     = errors.New("square is occupied")
	ErrNoMove       = errors.New("no legal move available")
	ErrInvalidInput = errors.New("invalid input")
)

type Game struct {
	board      ttt.Board
	first      ttt.Cell
	engine     *minimax.Engine
	pruning    *bool
	lastSearch minimax.SearchResult
}

type Option func(*Game)

// Use given engine for the AI moves
func WithEngine(engine *minimax.Engine) Option {
	return func(g *Game) {
		g.engine = engine
	}
}

// Turn alpha-beta pruning on or off, applied to the engine after all
// options, so it doesn't matter whether it comes before or after WithEngine
func WithPruning(pruning bool) Option {
	return func(g *Game) {
		g.pruning = &pruning
	}
}

// Let the AI make the first move
func WithAIFirst() Option {
	return func(g *Game) {
		g.first = ttt.AI
	}
}

// Start from given position instead of the empty board
func WithBoard(board ttt.Board) Option {
	return func(g *Game) {
		g.board = board
	}
}

// Create new game, by default the human moves first and the engine uses
// alpha-beta pruning. Returns ErrIllegalPosition (ttt) if the starting board
// can't be reached with the chosen opener.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		first:      ttt.Human,
		engine:     minimax.NewEngine(minimax.DefaultOptions()),
		lastSearch: minimax.SearchResult{BestMove: ttt.NoMove},
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.pruning != nil {
		// The engine's options may be shared, change a copy
		options := *g.engine.Options()
		g.engine.SetOptions(options.SetPruning(*g.pruning))
	}

	if err := g.board.Validate(); err != nil {
		return nil, err
	}

	if diff := g.board.Count(g.first) - g.board.Count(g.first.Opponent()); diff < 0 || diff > 1 {
		return nil, fmt.Errorf("%w: %v opened, but has %d marks against %d",
			ttt.ErrIllegalPosition, g.first, g.board.Count(g.first), g.board.Count(g.first.Opponent()))
	}

	return g, nil
}

// Copy of the current board
func (g *Game) Board() ttt.Board {
	return g.board
}

func (g *Game) Engine() *minimax.Engine {
	return g.engine
}

// Side which opened the game
func (g *Game) First() ttt.Cell {
	return g.first
}

func (g *Game) Turn() ttt.Cell {
	return g.board.SideToMove(g.first)
}

func (g *Game) Status() ttt.Termination {
	return g.board.Termination()
}

func (g *Game) Over() bool {
	return g.Status() != ttt.TerminationNone
}

// Number of marks on the board
func (g *Game) MoveCount() int {
	return 9 - g.board.Count(ttt.Empty)
}

// Result of the search behind the last AI move
func (g *Game) LastSearch() minimax.SearchResult {
	return g.lastSearch
}

// Clear the board, keeping the opener and the engine
func (g *Game) Reset() {
	g.board = ttt.Board{}
	g.lastSearch = minimax.SearchResult{BestMove: ttt.NoMove}
}

// Validate and play the human move, the board is not touched on error
func (g *Game) PlayHuman(m ttt.Move) error {
	if g.Over() {
		return ErrGameOver
	}
	if g.Turn() != ttt.Human {
		return ErrNotYourTurn
	}
	if !m.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, m)
	}
	if !g.board.IsEmpty(m) {
		return fmt.Errorf("%w: %v", ErrOccupied, m)
	}

	g.board.Set(m, ttt.Human)
	return nil
}

// Search the AI move on a copy of the board, the game is not modified
func (g *Game) SearchAI() (minimax.SearchResult, error) {
	if g.Over() {
		return minimax.SearchResult{BestMove: ttt.NoMove}, ErrGameOver
	}
	if g.Turn() != ttt.AI {
		return minimax.SearchResult{BestMove: ttt.NoMove}, ErrNotYourTurn
	}

	board := g.board
	result := g.engine.Search(&board, ttt.AI)
	if result.BestMove == ttt.NoMove {
		return result, ErrNoMove
	}
	return result, nil
}

// Play the move found by SearchAI
func (g *Game) ApplyAI(result minimax.SearchResult) error {
	if g.Over() {
		return ErrGameOver
	}
	if g.Turn() != ttt.AI {
		return ErrNotYourTurn
	}

	m := result.BestMove
	if !m.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, m)
	}
	if !g.board.IsEmpty(m) {
		return fmt.Errorf("%w: %v", ErrOccupied, m)
	}

	g.lastSearch = result
	g.board.Set(m, ttt.AI)
	return nil
}

// Search and play the AI move
func (g *Game) PlayAI() (ttt.Move, error) {
	result, err := g.SearchAI()
	if err != nil {
		return ttt.NoMove, err
	}
	if err := g.ApplyAI(result); err != nil {
		return ttt.NoMove, err
	}
	return result.BestMove, nil
}
