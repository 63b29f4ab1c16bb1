package board

import (
	"testing"

	"github.com/showell/lynrummy/deck"
	"github.com/stretchr/testify/assert"
)

func cards(labels string) []deck.Card {
	return deck.MustParseCards(labels, deck.DeckOne)
}

func TestClassify(t *testing.T) {
	tt := []struct {
		name   string
		cards  []deck.Card
		expect StackType
	}{
		{"no cards", []deck.Card{}, Incomplete},
		{"one card", cards("3H"), Incomplete},
		{"pair of threes", cards("3H,3S"), Incomplete},
		{"two in a row", cards("3S,4S"), Incomplete},
		{"silly pair", cards("3S,9D"), Bogus},
		{"same face twice", cards("3H,3H"), Dup},
		{"set", cards("3H,3S,3D"), Set},
		{"four of a kind", cards("7S,7D,7C,7H"), Set},
		{"pure run", cards("3S,4S,5S"), PureRun},
		{"red black run", cards("3S,4D,5S"), RedBlackRun},
		{"long red black run", cards("2C,3D,4C,5H,6S,7H"), RedBlackRun},
		{"around the ace", cards("KS,AS,2S,3S"), PureRun},
		{"queen king ace", cards("QD,KD,AD"), PureRun},
		{"mixed pattern", cards("3S,4D,4H"), Bogus},
		{"run then set", cards("3S,4S,4D"), Bogus},
		{"run out of order", cards("5S,4S,3S"), Bogus},
		{"same color neighbours", cards("3S,4C,5S"), Bogus},
		{"dup hides behind a good pair", cards("3H,3S,3H"), Dup},
		{"first pair is a dup", cards("3H,3H,3S"), Dup},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Classify(tc.cards))
		})
	}

	t.Run("same face from the other pack is a dup", func(t *testing.T) {
		set := []deck.Card{
			deck.NewCard(deck.Three, deck.Heart, deck.DeckOne),
			deck.NewCard(deck.Three, deck.Spade, deck.DeckOne),
			deck.NewCard(deck.Three, deck.Heart, deck.DeckTwo),
		}
		assert.Equal(t, Dup, Classify(set))
	})

	t.Run("a run may use both packs", func(t *testing.T) {
		run := []deck.Card{
			deck.NewCard(deck.Nine, deck.Club, deck.DeckTwo),
			deck.NewCard(deck.Ten, deck.Club, deck.DeckOne),
			deck.NewCard(deck.Jack, deck.Club, deck.DeckTwo),
		}
		assert.Equal(t, PureRun, Classify(run))
	})

	t.Run("classifying is repeatable", func(t *testing.T) {
		cs := cards("KS,AS,2S,3S")
		first := Classify(cs)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify(cs))
		}
		assert.Equal(t, cards("KS,AS,2S,3S"), cs)
	})
}

func TestStackTypeValues(t *testing.T) {
	assert.Equal(t, 90, TypeValue(PureRun))
	assert.Equal(t, 60, TypeValue(Set))
	assert.Equal(t, 50, TypeValue(RedBlackRun))
	for _, st := range []StackType{Incomplete, Bogus, Dup} {
		assert.Equal(t, 0, TypeValue(st), st.String())
		assert.False(t, st.IsComplete(), st.String())
	}
	assert.True(t, Bogus.IsProblematic())
	assert.True(t, Dup.IsProblematic())
	assert.False(t, Incomplete.IsProblematic())
}
