package game

import "github.com/lgbarn/tinychess-go/internal/book"

var openingBook = book.DefaultBook()

// BookLine names the most recent book line the game has followed.
func (s *Session) BookLine() (string, bool) {
	for i := len(s.positions) - 1; i > 0; i-- {
		if name, ok := openingBook.Name(s.positions[i]); ok {
			return name, true
		}
	}
	return "", false
}
