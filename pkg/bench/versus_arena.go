package bench

import (
	"context"
	"math/rand"
	"sync"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

/*
Arena benchmark subpackage, plays a series of tic-tac-toe games between two
players, spread over several worker goroutines.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Player
	Player2  Player
	NGames   uint
	NThreads uint
	wg       sync.WaitGroup
	done     chan struct{}
	ctx      context.Context
}

func NewVersusArena(player1, player2 Player) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NThreads: 2,
		ctx:      context.Background(),
	}
}

// Stop the workers once the context is done, unfinished games are not counted
func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(1, nThreads)
}

// Wait until every worker is done and the listener got the summary
func (va *VersusArena) Wait() {
	if va.done != nil {
		<-va.done
	}
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          int(va.NThreads),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
}

func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = NewArenaListener()
	}

	va.NThreads = max(1, va.NThreads)
	va.done = make(chan struct{})
	listener.OnStart()

	// Start equally distributed work between worker threads
	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads
	for i := range va.NThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)

		// Always use a clone, players and listeners are not shared between workers
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		l := listener.Clone()

		l.SetRow(int(i) + statsRowStart)
		go va.worker(int(i), int(nGames+delta), l, p1, p2)
	}

	go func() {
		va.wg.Wait()
		listener.Summary(va.Summary())
		listener.OnEnd()
		close(va.done)
	}()
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike, p1, p2 Player) {
	defer va.wg.Done()

	r := rand.New(rand.NewSource(SeedGeneratorFn() + int64(id)))
	local := &VersusArenaStats{}
	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   p1.Name(),
		P2Name:   p2.Name(),
	}

	for range nGames {
		p1First := r.Intn(2) == 0
		result, outcome, ok := va.playGame(p1, p2, p1First, listener, &info)
		if !ok {
			break
		}

		va.record(result, outcome)
		local.record(result, outcome)
		info.fill(local)
		listener.OnFinishedGame(info)
	}

	info.fill(local)
	listener.OnFinishedWork(info)
}

// Play a single game from the empty board, player 1 uses the AI mark.
// Returns false if the context was done before the game finished.
func (va *VersusArena) playGame(p1, p2 Player, p1First bool, listener ListenerLike, info *VersusWorkerInfo) (VersusMatchResult, GameOutcome, bool) {
	var board ttt.Board
	first := ttt.Human
	if p1First {
		first = ttt.AI
	}

	info.Moves = make([]ttt.Move, 0, 9)
	info.GameMoveNum = 0

	for !board.IsTerminated() {
		select {
		case <-va.ctx.Done():
			return VersusDraw, GameOutcome{}, false
		default:
			// continue
		}

		side := board.SideToMove(first)
		player := p2
		if side == ttt.AI {
			player = p1
		}

		m := player.Move(&board, side)
		if !m.InBounds() || !board.IsEmpty(m) {
			// Illegal move forfeits the game
			outcome := GameOutcome{FirstPlayerWon: side != first}
			return toAgentResult(outcome, p1First), outcome, true
		}

		board.Set(m, side)
		info.Moves = append(info.Moves, m)
		info.GameMoveNum = len(info.Moves)
		listener.OnMoveMade(*info)
	}

	outcome := computeOutcome(&board, first)
	return toAgentResult(outcome, p1First), outcome, true
}

func (info *VersusWorkerInfo) fill(stats *VersusArenaStats) {
	info.FinishedGames = stats.Total()
	info.P1Wins = stats.P1Wins()
	info.P2Wins = stats.P2Wins()
	info.Draws = stats.Draws()
	info.FirstToMoveWins = stats.FirstToMoveWins()
	info.SecondToMoveWins = stats.SecondToMoveWins()
}
