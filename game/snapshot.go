package game

import "github.com/showell/lynrummy/board"

// Snapshot is the last moment in the active player's turn when the board
// was clean. It owns its own copies of everything it holds.
type Snapshot struct {
	board *board.Board
	hand  *Hand
	turn  PlayerTurn
}

func takeSnapshot(b *board.Board, p *Player) *Snapshot {
	return &Snapshot{
		board: b.Clone(),
		hand:  p.Hand.Clone(),
		turn:  *p.Turn(),
	}
}

// Board returns the checkpointed board. Callers must not mutate it.
func (s *Snapshot) Board() *board.Board {
	return s.board
}

func (s *Snapshot) CardsPlayedDuringTurn() int {
	return s.turn.CardsPlayedDuringTurn
}
