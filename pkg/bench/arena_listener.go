package bench

// Forwards every arena event to all of its listeners, in order
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	return &ArenaListener{listeners: listeners}
}

func (al *ArenaListener) Add(listener ListenerLike) *ArenaListener {
	al.listeners = append(al.listeners, listener)
	return al
}

func (al *ArenaListener) OnStart() {
	for _, l := range al.listeners {
		l.OnStart()
	}
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnMoveMade(info)
	}
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(info VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(info)
	}
}

func (al *ArenaListener) OnEnd() {
	for _, l := range al.listeners {
		l.OnEnd()
	}
}

func (al *ArenaListener) SetRow(row int) {
	for _, l := range al.listeners {
		l.SetRow(row)
	}
}

func (al *ArenaListener) Clone() ListenerLike {
	clone := &ArenaListener{listeners: make([]ListenerLike, len(al.listeners))}
	for i, l := range al.listeners {
		clone.listeners[i] = l.Clone()
	}
	return clone
}
