package board

import (
	"testing"

	"github.com/showell/lynrummy/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shelf(text string) *Shelf {
	s, err := ShelfFromShorthand(text, deck.DeckOne)
	if err != nil {
		panic(err)
	}
	return s
}

func card(label string) deck.Card {
	c, err := deck.ParseCard(label, deck.DeckTwo)
	if err != nil {
		panic(err)
	}
	return c
}

func TestShelfExtendStackWithCard(t *testing.T) {
	t.Run("replaces the stack in place", func(t *testing.T) {
		s := shelf("3S,4S,5S 7S,7D,7C")
		size, ok := s.ExtendStackWithCard(1, card("7H"))
		require.True(t, ok)
		assert.Equal(t, 4, size)
		assert.Equal(t, "3S,4S,5S 7S,7D,7C,7H", s.String())
		assert.Equal(t, FreshlyPlayed, s.Stack(1).BoardCards()[3].State)
	})

	t.Run("a card that fits nowhere changes nothing", func(t *testing.T) {
		s := shelf("3S,4S,5S")
		size, ok := s.ExtendStackWithCard(0, card("9H"))
		assert.False(t, ok)
		assert.Equal(t, 0, size)
		assert.Equal(t, "3S,4S,5S", s.String())
	})

	t.Run("bad index panics", func(t *testing.T) {
		s := shelf("3S,4S,5S")
		assert.Panics(t, func() { s.ExtendStackWithCard(1, card("6S")) })
	})
}

func TestShelfSplitStack(t *testing.T) {
	t.Run("a single card cannot be split", func(t *testing.T) {
		s := shelf("3S 4H,4S,4D")
		assert.False(t, s.SplitStack(0, 0))
		assert.Equal(t, "3S 4H,4S,4D", s.String())
	})

	tt := []struct {
		name      string
		stack     string
		cardIndex int
		expect    string
	}{
		{"first card grows the left side", "3S,4S,5S,6S", 0, "3S 4S,5S,6S"},
		{"left half", "3S,4S,5S,6S", 1, "3S,4S 5S,6S"},
		{"right half", "3S,4S,5S,6S", 2, "3S,4S 5S,6S"},
		{"last card", "3S,4S,5S,6S", 3, "3S,4S,5S 6S"},
		{"middle of an odd stack", "3S,4S,5S,6S,7S", 2, "3S,4S 5S,6S,7S"},
		{"pair splits into singles", "3S,4S", 1, "3S 4S"},
		{"pair from the left", "3S,4S", 0, "3S 4S"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := shelf(tc.stack)
			assert.True(t, s.SplitStack(0, tc.cardIndex))
			assert.Equal(t, tc.expect, s.String())
		})
	}

	t.Run("halves rebuild the original and later stacks shift right", func(t *testing.T) {
		s := shelf("AC,AD,AH KS,AS,2S,3S,4S 7S,7D,7C")
		original := s.Stack(1).Cards()

		require.True(t, s.SplitStack(1, 3))
		require.Equal(t, 4, s.Len())

		left, right := s.Stack(1), s.Stack(2)
		assert.Greater(t, left.Size(), 0)
		assert.Greater(t, right.Size(), 0)
		assert.Equal(t, original, append(left.Cards(), right.Cards()...))
		assert.Equal(t, "7S,7D,7C", s.Stack(3).String())
		assert.Equal(t, "AC,AD,AH", s.Stack(0).String())
	})
}

func TestShelfStacks(t *testing.T) {
	t.Run("singletons go on the end", func(t *testing.T) {
		s := shelf("3S,4S,5S")
		s.AddSingletonCard(card("9H"))
		assert.Equal(t, "3S,4S,5S 9H", s.String())
		assert.True(t, s.IsLastStack(1))
		assert.False(t, s.IsLastStack(0))
		assert.False(t, s.IsClean())
	})

	t.Run("removing a stack shifts the rest down", func(t *testing.T) {
		s := shelf("AC,AD,AH 3S,4S,5S 7S,7D,7C")
		removed := s.RemoveStack(0)
		assert.Equal(t, "AC,AD,AH", removed.String())
		assert.Equal(t, "3S,4S,5S 7S,7D,7C", s.String())
	})

	t.Run("removing does not disturb a clone", func(t *testing.T) {
		s := shelf("AC,AD,AH 3S,4S,5S 7S,7D,7C")
		c := s.Clone()
		s.RemoveStack(1)
		assert.Equal(t, "AC,AD,AH 3S,4S,5S 7S,7D,7C", c.String())
	})

	t.Run("an empty shelf is clean and scores nothing", func(t *testing.T) {
		s := shelf("")
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.IsClean())
		assert.Equal(t, 0, s.Score())
	})
}
