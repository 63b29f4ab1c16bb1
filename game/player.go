package game

import (
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player is a participant: a private hand, a running total, and a turn
// while it is their go.
type Player struct {
	ID         string
	Name       string
	Hand       *Hand
	TotalScore int
	turn       *PlayerTurn
}

// NewPlayer constructs a player holding the given hand
func NewPlayer(id, name string, hand *Hand) *Player {
	if id == "" {
		id = NewID()
	}
	if hand == nil {
		hand = NewHand(nil, Normal)
	}
	return &Player{ID: id, Name: name, Hand: hand}
}

// IsActive reports whether the player has a turn in progress
func (p *Player) IsActive() bool {
	return p.turn != nil
}

// Turn returns the turn in progress; there must be one.
func (p *Player) Turn() *PlayerTurn {
	if p.turn == nil {
		panic("player " + p.Name + " has no turn in progress")
	}
	return p.turn
}

// StartTurn opens a turn measured against the current board score.
func (p *Player) StartTurn(boardScore int) {
	p.turn = newPlayerTurn(boardScore)
}

// EndTurn banks the turn score and closes the turn.
func (p *Player) EndTurn(boardScore int) int {
	score := p.Turn().TurnScore(boardScore)
	p.TotalScore += score
	p.turn = nil
	return score
}
