package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Search engine with its options, statistics of the last search and
// a listener. An engine runs one search at a time, use separate engines
// for concurrent searches.
type Engine struct {
	SearchStats
	options  *Options
	listener *StatsListener
	timer    *_Timer
}

func NewEngine(options *Options) *Engine {
	if options == nil {
		options = DefaultOptions()
	}

	return &Engine{
		options:  options,
		listener: &StatsListener{},
		timer:    _NewTimer(),
	}
}

func (e *Engine) SetOptions(options *Options) {
	e.options = options
}

func (e *Engine) Options() *Options {
	return e.options
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

func (e *Engine) ResetListener() {
	e.listener.OnMove(nil).OnStop(nil)
}

// Clone the engine with a copy of the options, without the listener
func (e *Engine) Clone() *Engine {
	options := *e.options
	return NewEngine(&options)
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine={Options=%v, Stats:{nodes=%d, cutoffs=%d, maxdepth=%d}}",
		*e.options, e.Nodes(), e.Cutoffs(), e.MaxDepth())
}

// Minimax score of the board with the full window, 'maximizing' is true when the AI is to move
func (e *Engine) Evaluate(b *ttt.Board, maximizing bool) int {
	e.SearchStats.reset()
	s := searcher{pruning: e.options.Pruning}
	score := s.evaluate(b, 0, maximizing, -Infinity, Infinity)
	e.SearchStats.merge(&s)
	return score
}

// Score every move of 'side' and choose the best one. The AI maximizes, the
// human minimizes, on equal scores the first move in row-major order wins.
// If there is no empty square, BestMove is ttt.NoMove.
func (e *Engine) Search(b *ttt.Board, side ttt.Cell) SearchResult {
	e.SearchStats.reset()
	e.timer.Reset()

	lines := e.scoreRootMoves(b, side)

	result := SearchResult{BestMove: ttt.NoMove, Lines: lines}
	if side == ttt.AI {
		result.Score = -Infinity
	} else {
		result.Score = Infinity
	}

	for _, line := range lines {
		e.listener.invokeMove(line)

		if (side == ttt.AI && line.Score > result.Score) || (side != ttt.AI && line.Score < result.Score) {
			result.BestMove = line.Move
			result.Score = line.Score
		}
	}

	if result.BestMove == ttt.NoMove {
		result.Score = DrawScore
		if score, terminal := terminalScore(b, 0); terminal {
			result.Score = score
		}
	}

	result.Nodes = e.Nodes()
	result.Cutoffs = e.Cutoffs()
	result.MaxDepth = e.MaxDepth()
	result.TimeMs = e.timer.Deltatime()
	result.Nps = result.Nodes * 1000 / uint64(result.TimeMs)

	e.listener.invokeStop(result)
	return result
}

// Best move for the AI, ttt.NoMove if the board is full
func (e *Engine) BestMove(b *ttt.Board) ttt.Move {
	return e.Search(b, ttt.AI).BestMove
}

// Best move for given side, ttt.NoMove if the board is full
func (e *Engine) BestMoveFor(b *ttt.Board, side ttt.Cell) ttt.Move {
	return e.Search(b, side).BestMove
}

// Best sequence of moves until the game ends, starting with 'side'
func (e *Engine) PrincipalVariation(b *ttt.Board, side ttt.Cell) []ttt.Move {
	pos := *b
	pv := make([]ttt.Move, 0, 9)

	for !pos.IsTerminated() {
		m := e.BestMoveFor(&pos, side)
		if m == ttt.NoMove {
			break
		}

		pos.Set(m, side)
		pv = append(pv, m)
		side = side.Opponent()
	}

	return pv
}

// Choose the AI move: every empty square (row-major) is tried with the opponent
// to move next, the strictly greatest score wins. Returns ttt.NoMove (-1, -1)
// if there is no empty square, such move must not be applied to the board.
func BestMove(b *ttt.Board, pruning bool) ttt.Move {
	return NewEngine(DefaultOptions().SetPruning(pruning)).BestMove(b)
}
