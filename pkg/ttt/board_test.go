package ttt

import "testing"

func TestGenerateMovesRowMajor(t *testing.T) {
	b := NewBoard()
	moves := b.GenerateMoves().Slice()
	if len(moves) != 9 {
		t.Fatalf("expected 9 moves on empty board, got %d", len(moves))
	}
	for i, m := range moves {
		if m.Index() != i {
			t.Fatalf("move %d is %v, expected row-major order", i, m)
		}
	}

	b.Set(Move{0, 0}, Human)
	b.Set(Move{1, 1}, AI)
	b.Set(Move{2, 2}, Human)
	want := []Move{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}
	got := b.GenerateMoves().Slice()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestGenerateMovesFullBoard(t *testing.T) {
	b := mustRows(t, "XOX", "XOO", "OXX")
	if n := b.GenerateMoves().Size; n != 0 {
		t.Fatalf("expected no moves, got %d", n)
	}
}

func TestSideToMove(t *testing.T) {
	b := NewBoard()
	if b.SideToMove(Human) != Human || b.SideToMove(AI) != AI {
		t.Fatal("opener should move on the empty board")
	}

	b.Set(Move{0, 0}, Human)
	if s := b.SideToMove(Human); s != AI {
		t.Fatalf("side to move %v, want ai", s)
	}

	b.Set(Move{1, 1}, AI)
	if s := b.SideToMove(Human); s != Human {
		t.Fatalf("side to move %v, want human", s)
	}
}

func TestCountAndBitboard(t *testing.T) {
	b := mustRows(t, "X O", " X ", "O  ")
	if b.Count(Human) != 2 || b.Count(AI) != 2 || b.Count(Empty) != 5 {
		t.Fatalf("counts h=%d a=%d e=%d", b.Count(Human), b.Count(AI), b.Count(Empty))
	}
	if bb := b.Bitboard(Human); bb != 0b000010001 {
		t.Fatalf("human bitboard %09b", bb)
	}
	if bb := b.Bitboard(AI); bb != 0b001000100 {
		t.Fatalf("ai bitboard %09b", bb)
	}
}

func TestCellOpponent(t *testing.T) {
	if Human.Opponent() != AI || AI.Opponent() != Human || Empty.Opponent() != Empty {
		t.Fatal("wrong opponent mapping")
	}
}

func TestMoveIndex(t *testing.T) {
	for i := range 9 {
		m := MoveFromIndex(i)
		if !m.InBounds() || m.Index() != i {
			t.Fatalf("index %d -> %v -> %d", i, m, m.Index())
		}
	}
	if NoMove.InBounds() {
		t.Fatal("NoMove can't be in bounds")
	}
	if s := NoMove.String(); s != "(-1, -1)" {
		t.Fatalf("NoMove.String()=%q", s)
	}
}
