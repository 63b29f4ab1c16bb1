package board

import "github.com/showell/lynrummy/deck"

// BoardCardState tracks how recently a card arrived on the board
type BoardCardState int

const (
	FirmlyOnBoard BoardCardState = iota
	FreshlyPlayed
	FreshlyPlayedByLastPlayer
)

var boardCardStateNames = []string{"firmly on board", "freshly played", "freshly played by last player"}

func (s BoardCardState) String() string {
	return boardCardStateNames[s]
}

// BoardCard is a card owned by the board
type BoardCard struct {
	Card  deck.Card
	State BoardCardState
}

// NewBoardCard wraps a card with a display state
func NewBoardCard(card deck.Card, state BoardCardState) BoardCard {
	return BoardCard{Card: card, State: state}
}

// Aged returns the card one completed turn later.
func (bc BoardCard) Aged() BoardCard {
	switch bc.State {
	case FreshlyPlayed:
		bc.State = FreshlyPlayedByLastPlayer
	case FreshlyPlayedByLastPlayer:
		bc.State = FirmlyOnBoard
	}
	return bc
}

func (bc BoardCard) String() string {
	return bc.Card.String()
}
