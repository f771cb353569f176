package chess

// MaxMoves is the largest number of legal moves any chess position can have.
const MaxMoves = 218

// MoveList is a fixed-capacity ordered list of moves. It never allocates;
// pushes beyond MaxMoves are dropped.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Push appends a move, silently dropping it if the list is full.
func (l *MoveList) Push(m Move) {
	if l.count < MaxMoves {
		l.moves[l.count] = m
		l.count++
	}
}

// Len returns the number of moves in the list.
func (l *MoveList) Len() int {
	return l.count
}

// At returns the i-th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Set replaces the i-th move.
func (l *MoveList) Set(i int, m Move) {
	l.moves[i] = m
}

// Swap exchanges the moves at i and j.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
}

// Moves returns a slice view of the stored moves. The slice aliases the list.
func (l *MoveList) Moves() []Move {
	return l.moves[:l.count]
}

// Contains reports whether m is in the list.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.count; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}

// Retain keeps only the moves for which keep returns true, preserving order.
func (l *MoveList) Retain(keep func(Move) bool) {
	write := 0
	for i := 0; i < l.count; i++ {
		if keep(l.moves[i]) {
			l.moves[write] = l.moves[i]
			write++
		}
	}
	l.count = write
}

// Clear empties the list.
func (l *MoveList) Clear() {
	l.count = 0
}
