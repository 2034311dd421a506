package minimax

import (
	"fmt"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type SearchStats struct {
	nodes    atomic.Uint64
	cutoffs  atomic.Uint64
	maxdepth atomic.Int32
}

// Total number of positions evaluated in the last search
func (s *SearchStats) Nodes() uint64 {
	return s.nodes.Load()
}

// Number of beta (or alpha) cutoffs in the last search
func (s *SearchStats) Cutoffs() uint64 {
	return s.cutoffs.Load()
}

// Deepest ply reached from the searched position
func (s *SearchStats) MaxDepth() int {
	return int(s.maxdepth.Load())
}

func (s *SearchStats) reset() {
	s.nodes.Store(0)
	s.cutoffs.Store(0)
	s.maxdepth.Store(0)
}

// Add counters of a finished searcher
func (s *SearchStats) merge(other *searcher) {
	s.nodes.Add(other.nodes)
	s.cutoffs.Add(other.cutoffs)

	for {
		current := s.maxdepth.Load()
		if int32(other.maxDepth) <= current || s.maxdepth.CompareAndSwap(current, int32(other.maxDepth)) {
			return
		}
	}
}

// Root move with its minimax score
type MoveScore struct {
	Move  ttt.Move
	Score int
}

type SearchResult struct {
	BestMove ttt.Move
	Score    int
	Lines    []MoveScore
	Nodes    uint64
	Cutoffs  uint64
	MaxDepth int
	TimeMs   int
	Nps      uint64
}

func (r SearchResult) String() string {
	return fmt.Sprintf("bestmove %v score %d depth %d nodes %d cutoffs %d time %dms nps %d",
		r.BestMove, r.Score, r.MaxDepth, r.Nodes, r.Cutoffs, r.TimeMs, r.Nps)
}
