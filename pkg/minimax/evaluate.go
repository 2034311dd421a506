// Package minimax implements exhaustive game-tree search for tic-tac-toe,
// with optional alpha-beta pruning.
//
// The AI is always the maximizing side: a position won by the AI scores
// 10 - depth, a position won by the human scores depth - 10 and a draw 0,
// where depth is the number of plies from the evaluated position.
package minimax

import "github.com/IlikeChooros/go-minimax/pkg/ttt"

// Evaluate the board with minimax, 'maximizing' tells whether the AI is to move.
// The board is mutated during the search, but every square is restored before
// returning, so the caller sees it unchanged.
//
// The initial call should use alpha = -Infinity, beta = Infinity. With pruning
// the returned score is the same, but scores of the pruned siblings are never computed.
func Evaluate(b *ttt.Board, depth int, maximizing bool, alpha, beta int, pruning bool) int {
	s := searcher{pruning: pruning}
	return s.evaluate(b, depth, maximizing, alpha, beta)
}

// Depth-first search state, counts visited nodes and cutoffs
type searcher struct {
	pruning  bool
	nodes    uint64
	cutoffs  uint64
	maxDepth int
}

// Score of a terminal board, checked in order: AI win, human win, draw
func terminalScore(b *ttt.Board, depth int) (int, bool) {
	if ttt.IsWin(b, ttt.AI) {
		return WinScore - depth, true
	}
	if ttt.IsWin(b, ttt.Human) {
		return depth - WinScore, true
	}
	if ttt.IsDraw(b) {
		return DrawScore, true
	}
	return 0, false
}

func (s *searcher) evaluate(b *ttt.Board, depth int, maximizing bool, alpha, beta int) int {
	s.nodes++
	s.maxDepth = max(s.maxDepth, depth)

	if score, terminal := terminalScore(b, depth); terminal {
		return score
	}

	moves := b.GenerateMoves()

	if maximizing {
		best := -Infinity
		for _, m := range moves.Slice() {
			score := s.try(b, m, ttt.AI, depth, false, alpha, beta)
			best = max(best, score)

			if s.pruning {
				alpha = max(alpha, score)
				if beta <= alpha {
					s.cutoffs++
					break
				}
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves.Slice() {
		score := s.try(b, m, ttt.Human, depth, true, alpha, beta)
		best = min(best, score)

		if s.pruning {
			beta = min(beta, score)
			if beta <= alpha {
				s.cutoffs++
				break
			}
		}
	}
	return best
}

// Place the mark, search the child and take the mark back,
// the square is emptied on every exit path
func (s *searcher) try(b *ttt.Board, m ttt.Move, mark ttt.Cell, depth int, maximizing bool, alpha, beta int) int {
	b.Set(m, mark)
	defer b.Set(m, ttt.Empty)
	return s.evaluate(b, depth+1, maximizing, alpha, beta)
}

// Score of playing 'm' for 'side', the resulting position is searched
// from depth 0 with the opponent to move
func (s *searcher) scoreMove(b *ttt.Board, m ttt.Move, side ttt.Cell) int {
	b.Set(m, side)
	defer b.Set(m, ttt.Empty)
	return s.evaluate(b, 0, side != ttt.AI, -Infinity, Infinity)
}
