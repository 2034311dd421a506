package bench

import (
	"math/rand"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Arena participant. Player 1 always uses the AI mark, player 2 the human mark,
// the opener is chosen at random for each game.
type Player interface {
	Name() string
	// Choose a move for 'side', the board must be restored before returning
	Move(b *ttt.Board, side ttt.Cell) ttt.Move
	// Independent copy, used by a single worker
	Clone() Player
}

// Plays the minimax best move
type MinimaxPlayer struct {
	name   string
	engine *minimax.Engine
}

func NewMinimaxPlayer(name string, options *minimax.Options) *MinimaxPlayer {
	return &MinimaxPlayer{name: name, engine: minimax.NewEngine(options)}
}

func (p *MinimaxPlayer) Name() string {
	return p.name
}

func (p *MinimaxPlayer) Engine() *minimax.Engine {
	return p.engine
}

func (p *MinimaxPlayer) Move(b *ttt.Board, side ttt.Cell) ttt.Move {
	return p.engine.BestMoveFor(b, side)
}

func (p *MinimaxPlayer) Clone() Player {
	return &MinimaxPlayer{name: p.name, engine: p.engine.Clone()}
}

var randomPlayerClones atomic.Int64

// Plays uniformly random legal moves
type RandomPlayer struct {
	name string
	rand *rand.Rand
}

func NewRandomPlayer(name string) *RandomPlayer {
	return &RandomPlayer{
		name: name,
		rand: rand.New(rand.NewSource(SeedGeneratorFn())),
	}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) Move(b *ttt.Board, side ttt.Cell) ttt.Move {
	moves := b.GenerateMoves()
	if moves.Size == 0 {
		return ttt.NoMove
	}
	return moves.Moves[p.rand.Intn(int(moves.Size))]
}

// Each clone gets a different seed, so the workers don't replay the same games
func (p *RandomPlayer) Clone() Player {
	return &RandomPlayer{
		name: p.name,
		rand: rand.New(rand.NewSource(SeedGeneratorFn() + randomPlayerClones.Add(1))),
	}
}
