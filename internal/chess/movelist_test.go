package chess

import "testing"

func TestMoveListPush(t *testing.T) {
	var l MoveList
	l.Push(NewMove(12, 28))
	l.Push(NewMove(6, 21))

	if l.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", l.Len())
	}
	if l.At(1) != NewMove(6, 21) {
		t.Errorf("At(1) = %v; want g1f3", l.At(1))
	}
	if !l.Contains(NewMove(12, 28)) {
		t.Error("Contains(e2e4) = false")
	}
	if l.Contains(NewMove(11, 27)) {
		t.Error("Contains(d2d4) = true")
	}
}

func TestMoveListCapacity(t *testing.T) {
	var l MoveList
	for i := 0; i < MaxMoves+10; i++ {
		l.Push(NewMove(Square(i%64), Square((i+1)%64)))
	}
	if l.Len() != MaxMoves {
		t.Errorf("Len() = %d after overfilling; want %d", l.Len(), MaxMoves)
	}
}

func TestMoveListRetain(t *testing.T) {
	var l MoveList
	for i := 0; i < 10; i++ {
		l.Push(NewMove(Square(i), Square(i+8)))
	}
	l.Retain(func(m Move) bool { return m.From%2 == 0 })

	if l.Len() != 5 {
		t.Fatalf("Len() = %d; want 5", l.Len())
	}
	for i, m := range l.Moves() {
		if m.From != Square(i*2) {
			t.Errorf("Moves()[%d].From = %d; want %d", i, m.From, i*2)
		}
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d", l.Len())
	}
}
