package deck

import (
	"fmt"
	"math/rand"
)

// FullDeckCount is the size of the double pack.
const FullDeckCount = 104

// Deck is an ordered pile of cards; the top of the deck is the last element.
type Deck []Card

// New creates both packs of cards in order
func New() Deck {
	cards := make([]Card, 0, FullDeckCount)
	for _, origin := range []OriginDeck{DeckOne, DeckTwo} {
		for suit := Club; suit <= Heart; suit++ {
			for value := Ace; value <= King; value++ {
				cards = append(cards, NewCard(value, suit, origin))
			}
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle(rng *rand.Rand) {
	actualDeck := *d
	rng.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// TakeFromTop removes up to n cards from the top of the deck.
// When fewer than n cards remain, the rest of the deck is returned.
func (d *Deck) TakeFromTop(n int) []Card {
	numCardsInDeck := len(*d)
	if n <= 0 {
		return []Card{}
	}
	if n > numCardsInDeck {
		n = numCardsInDeck
	}
	startingIndex := numCardsInDeck - n
	taken := make([]Card, n)
	copy(taken, (*d)[startingIndex:])
	*d = (*d)[:startingIndex]
	return taken
}

// Remove takes a specific physical card out of the deck.
// The card must be present.
func (d *Deck) Remove(card Card) {
	for i, c := range *d {
		if c == card {
			*d = append((*d)[:i], (*d)[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("card %s (%s) is not in the deck", card, card.Origin))
}

// Contains reports whether the physical card is still in the deck
func (d Deck) Contains(card Card) bool {
	for _, c := range d {
		if c == card {
			return true
		}
	}
	return false
}

// Len returns the number of cards left
func (d Deck) Len() int {
	return len(d)
}
