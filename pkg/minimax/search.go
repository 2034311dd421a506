package minimax

import (
	"sync"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Score every empty square for 'side', results are in row-major order.
// Each root move is searched with a fresh (-Infinity, Infinity) window,
// so the scores are exact regardless of pruning.
func (e *Engine) scoreRootMoves(b *ttt.Board, side ttt.Cell) []MoveScore {
	moves := b.GenerateMoves().Slice()
	lines := make([]MoveScore, len(moves))
	threads := min(max(1, e.options.NThreads), len(moves))

	if threads <= 1 {
		s := searcher{pruning: e.options.Pruning}
		for i, m := range moves {
			lines[i] = MoveScore{Move: m, Score: s.scoreMove(b, m, side)}
		}
		e.SearchStats.merge(&s)
		return lines
	}

	// Root parallel: every goroutine gets its own copy of the board
	// and scores every 'threads'-th move
	var wg sync.WaitGroup
	for id := range threads {
		wg.Add(1)
		go func(id int, pos ttt.Board) {
			defer wg.Done()

			s := searcher{pruning: e.options.Pruning}
			for i := id; i < len(moves); i += threads {
				lines[i] = MoveScore{Move: moves[i], Score: s.scoreMove(&pos, moves[i], side)}
			}
			e.SearchStats.merge(&s)
		}(id, *b)
	}

	wg.Wait()
	return lines
}
