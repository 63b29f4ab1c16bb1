package board

import "github.com/showell/lynrummy/deck"

// relate classifies the ordered pair (c1, c2). It is not symmetric.
func relate(c1, c2 deck.Card) StackType {
	if c1.SameFace(c2) {
		return Dup
	}
	if c1.Value == c2.Value {
		return Set
	}
	if c2.Value == c1.Value.Successor() {
		if c1.Suit == c2.Suit {
			return PureRun
		}
		if c1.Color() != c2.Color() {
			return RedBlackRun
		}
	}
	return Bogus
}

// Classify decides what an ordered group of cards is.
// At least three cards are needed for a complete stack.
func Classify(cards []deck.Card) StackType {
	if len(cards) <= 1 {
		return Incomplete
	}

	provisional := relate(cards[0], cards[1])
	if provisional == Bogus || provisional == Dup {
		return provisional
	}
	if len(cards) == 2 {
		return Incomplete
	}

	if provisional == Set && hasDuplicateCards(cards) {
		return Dup
	}
	if !followsConsistentPattern(cards, provisional) {
		return Bogus
	}
	return provisional
}

func hasDuplicateCards(cards []deck.Card) bool {
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].SameFace(cards[j]) {
				return true
			}
		}
	}
	return false
}

// the first pair already established st
func followsConsistentPattern(cards []deck.Card, st StackType) bool {
	for i := 1; i+1 < len(cards); i++ {
		if relate(cards[i], cards[i+1]) != st {
			return false
		}
	}
	return true
}
