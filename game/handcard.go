package game

import "github.com/showell/lynrummy/deck"

// HandCardState is the display state of a card in a player's hand
type HandCardState int

const (
	Normal HandCardState = iota
	FreshlyDrawn
)

func (s HandCardState) String() string {
	if s == FreshlyDrawn {
		return "freshly drawn"
	}
	return "normal"
}

// HandCard is a card held privately by one player
type HandCard struct {
	Card  deck.Card
	State HandCardState
}

func (hc HandCard) String() string {
	return hc.Card.String()
}
