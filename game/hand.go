package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/showell/lynrummy/deck"
)

// Hand is the unordered multiset of cards one player holds.
type Hand struct {
	cards []HandCard
}

// NewHand constructs a hand of cards in the given state
func NewHand(cards []deck.Card, state HandCardState) *Hand {
	h := &Hand{cards: []HandCard{}}
	h.Add(cards, state)
	return h
}

// Add puts cards into the hand
func (h *Hand) Add(cards []deck.Card, state HandCardState) {
	for _, c := range cards {
		h.cards = append(h.cards, HandCard{Card: c, State: state})
	}
}

// Remove takes a physical card out of the hand. The card must be held.
func (h *Hand) Remove(card deck.Card) {
	for i, hc := range h.cards {
		if hc.Card == card {
			h.cards = append(h.cards[:i:i], h.cards[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("card %s (%s) is not in the hand", card, card.Origin))
}

// Contains reports whether the physical card is held
func (h *Hand) Contains(card deck.Card) bool {
	for _, hc := range h.cards {
		if hc.Card == card {
			return true
		}
	}
	return false
}

// Find returns a held card with the given face, from either pack.
func (h *Hand) Find(value deck.Value, suit deck.Suit) (HandCard, bool) {
	for _, hc := range h.cards {
		if hc.Card.Value == value && hc.Card.Suit == suit {
			return hc, true
		}
	}
	return HandCard{}, false
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the hand's cards
func (h *Hand) Cards() []HandCard {
	cards := make([]HandCard, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// ResetStates marks every held card as normal again.
func (h *Hand) ResetStates() {
	for i := range h.cards {
		h.cards[i].State = Normal
	}
}

// Clone deep-copies the hand
func (h *Hand) Clone() *Hand {
	return &Hand{cards: h.Cards()}
}

// String lists the cards sorted by suit then value
func (h *Hand) String() string {
	cards := h.Cards()
	sort.Slice(cards, func(i, j int) bool {
		a, b := cards[i].Card, cards[j].Card
		if a.Suit != b.Suit {
			return a.Suit < b.Suit
		}
		return a.Value < b.Value
	})
	labels := make([]string, len(cards))
	for i, hc := range cards {
		labels[i] = hc.String()
	}
	return strings.Join(labels, " ")
}
