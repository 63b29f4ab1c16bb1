package game

import (
	"testing"

	"github.com/showell/lynrummy/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHand(t *testing.T) {
	t.Run("holds both copies of a face", func(t *testing.T) {
		h := NewHand(deck.MustParseCards("7S", deck.DeckOne), Normal)
		h.Add(deck.MustParseCards("7S", deck.DeckTwo), FreshlyDrawn)
		require.Equal(t, 2, h.Len())

		h.Remove(card("7S"))
		assert.Equal(t, 1, h.Len())
		assert.False(t, h.Contains(card("7S")))

		hc, ok := h.Find(deck.Seven, deck.Spade)
		require.True(t, ok)
		assert.Equal(t, deck.DeckOne, hc.Card.Origin)
		assert.Equal(t, Normal, hc.State)
	})

	t.Run("removing a card not held panics", func(t *testing.T) {
		h := NewHand(deck.MustParseCards("7S", deck.DeckOne), Normal)
		assert.Panics(t, func() { h.Remove(card("7S")) })
	})

	t.Run("find misses", func(t *testing.T) {
		h := NewHand(nil, Normal)
		_, ok := h.Find(deck.Ace, deck.Heart)
		assert.False(t, ok)
		assert.True(t, h.IsEmpty())
	})

	t.Run("lists cards by suit then value", func(t *testing.T) {
		h := NewHand(deck.MustParseCards("KS,3H,9C,2C,TD", deck.DeckTwo), Normal)
		assert.Equal(t, "2C 9C TD KS 3H", h.String())
	})

	t.Run("reset marks drawn cards normal", func(t *testing.T) {
		h := NewHand(deck.MustParseCards("KS,3H", deck.DeckTwo), FreshlyDrawn)
		h.ResetStates()
		for _, hc := range h.Cards() {
			assert.Equal(t, Normal, hc.State)
		}
	})

	t.Run("clones are independent", func(t *testing.T) {
		h := NewHand(deck.MustParseCards("KS,3H", deck.DeckTwo), Normal)
		clone := h.Clone()
		h.Remove(card("KS"))

		assert.Equal(t, 2, clone.Len())
		assert.True(t, clone.Contains(card("KS")))
	})
}
