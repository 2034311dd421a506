package ttt

// Moves in row-major order, at most 9 of them
type MoveList struct {
	Moves [9]Move
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv Move) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml *MoveList) Slice() []Move {
	return ml.Moves[:ml.Size]
}
