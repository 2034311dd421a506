package bench

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// First terminal row used by the per-worker stats
const statsRowStart = 3

// Arena events. Every worker gets its own Clone, OnStart, Summary and OnEnd
// are called only on the listener passed to VersusArena.Start
type ListenerLike interface {
	OnStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
	OnEnd()
	SetRow(row int)
	Clone() ListenerLike
}

// Live terminal view, one row per worker, followed by the summary
type DefaultListener struct {
	output *termenv.Output
	mu     *sync.Mutex
	row    int
}

// Nil output writes to stdout
func NewDefaultListener(output *termenv.Output) *DefaultListener {
	if output == nil {
		output = termenv.NewOutput(os.Stdout)
	}
	return &DefaultListener{output: output, mu: &sync.Mutex{}, row: statsRowStart}
}

func (d *DefaultListener) OnStart() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.output.ClearScreen()
	d.output.HideCursor()
	d.output.MoveCursor(1, 1)
	fmt.Fprintln(d.output, d.output.String("Versus arena").Bold())
}

func (d *DefaultListener) OnMoveMade(info VersusWorkerInfo) {}

func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {
	d.print(info)
}

func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {
	d.print(info)
}

func (d *DefaultListener) print(info VersusWorkerInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.output.MoveCursor(d.row, 1)
	d.output.ClearLine()
	fmt.Fprintf(d.output, "worker %d: %d/%d games | %s %d | %s %d | draws %d",
		info.WorkerID, info.FinishedGames, info.NGames,
		info.P1Name, info.P1Wins, info.P2Name, info.P2Wins, info.Draws)
}

func (d *DefaultListener) Summary(info VersusSummaryInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.output.MoveCursor(statsRowStart+info.Workers+1, 1)
	fmt.Fprintf(d.output, "%s\n", d.output.String("Summary").Bold())
	fmt.Fprintf(d.output, "games: %d, workers: %d\n", info.TotalGames, info.Workers)
	fmt.Fprintf(d.output, "%s: %d wins\n", info.P1Name, info.P1Wins)
	fmt.Fprintf(d.output, "%s: %d wins\n", info.P2Name, info.P2Wins)
	fmt.Fprintf(d.output, "draws: %d\n", info.Draws)
	fmt.Fprintf(d.output, "first to move wins: %d, second to move wins: %d\n",
		info.FirstToMoveWins, info.SecondToMoveWins)
}

func (d *DefaultListener) OnEnd() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.output.ShowCursor()
}

func (d *DefaultListener) SetRow(row int) {
	d.row = row
}

// Clones share the output and its lock
func (d *DefaultListener) Clone() ListenerLike {
	return &DefaultListener{output: d.output, mu: d.mu, row: d.row}
}

// Writes the arena events as structured log entries
type LogListener struct {
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnStart() {
	l.logger.Info().Msg("arena started")
}

func (l *LogListener) OnMoveMade(info VersusWorkerInfo) {
	if len(info.Moves) == 0 {
		return
	}
	l.logger.Trace().
		Int("worker", info.WorkerID).
		Int("ply", info.GameMoveNum).
		Stringer("move", info.Moves[len(info.Moves)-1]).
		Msg("move made")
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("moves", info.GameMoveNum).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("game finished")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.logger.Info().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker finished")
}

func (l *LogListener) Summary(info VersusSummaryInfo) {
	l.logger.Info().
		Str("player1", info.P1Name).
		Str("player2", info.P2Name).
		Int("games", info.TotalGames).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Int("first_to_move_wins", info.FirstToMoveWins).
		Int("second_to_move_wins", info.SecondToMoveWins).
		Int("workers", info.Workers).
		Msg("summary")
}

func (l *LogListener) OnEnd() {
	l.logger.Info().Msg("arena finished")
}

func (l *LogListener) SetRow(row int) {
	l.logger = l.logger.With().Int("row", row).Logger()
}

func (l *LogListener) Clone() ListenerLike {
	return &LogListener{logger: l.logger}
}
