package minimax

// Listener function callback, receives the search result after the search ends
type ListenerFunc func(SearchResult)

type StatsListener struct {
	// called for every root move, in row-major order, after its score is known
	onMove func(MoveScore)

	// called once, when the search ends
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach root move callback. Always called by the goroutine running the search,
// even with multiple threads, so there is no need for synchronization here
func (listener *StatsListener) OnMove(onMove func(MoveScore)) *StatsListener {
	listener.onMove = onMove
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeMove(ms MoveScore) {
	if listener.onMove != nil {
		listener.onMove(ms)
	}
}

func (listener *StatsListener) invokeStop(result SearchResult) {
	if listener.onStop != nil {
		listener.onStop(result)
	}
}
