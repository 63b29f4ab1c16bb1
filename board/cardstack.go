package board

import (
	"fmt"
	"strings"

	"github.com/showell/lynrummy/deck"
)

// CardStack is an ordered, non-empty group of board cards plus its
// classification. The type is computed once at construction; a stack is
// never mutated after that; changes produce new stacks.
type CardStack struct {
	boardCards []BoardCard
	stackType  StackType
}

// NewCardStack constructs a stack from the given cards, in order
func NewCardStack(boardCards ...BoardCard) *CardStack {
	if len(boardCards) == 0 {
		panic("a card stack needs at least one card")
	}
	cards := make([]BoardCard, len(boardCards))
	copy(cards, boardCards)

	s := &CardStack{boardCards: cards}
	s.stackType = Classify(s.Cards())
	return s
}

// SingletonStack wraps one freshly played card.
func SingletonStack(card deck.Card) *CardStack {
	return NewCardStack(NewBoardCard(card, FreshlyPlayed))
}

// StackFromShorthand builds a stack from labels such as "3H,3S,3D".
func StackFromShorthand(labels string, origin deck.OriginDeck, state BoardCardState) (*CardStack, error) {
	cards, err := deck.ParseCards(labels, origin)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: empty stack", deck.ErrInvalidLabel)
	}
	boardCards := make([]BoardCard, len(cards))
	for i, c := range cards {
		boardCards[i] = NewBoardCard(c, state)
	}
	return NewCardStack(boardCards...), nil
}

// MustStackFromShorthand is StackFromShorthand for fixtures known to be valid.
func MustStackFromShorthand(labels string, origin deck.OriginDeck, state BoardCardState) *CardStack {
	s, err := StackFromShorthand(labels, origin, state)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *CardStack) Type() StackType {
	return s.stackType
}

func (s *CardStack) Size() int {
	return len(s.boardCards)
}

// Cards returns the plain cards, in stack order
func (s *CardStack) Cards() []deck.Card {
	cards := make([]deck.Card, len(s.boardCards))
	for i, bc := range s.boardCards {
		cards[i] = bc.Card
	}
	return cards
}

// BoardCards returns a copy of the stack's card records
func (s *CardStack) BoardCards() []BoardCard {
	cards := make([]BoardCard, len(s.boardCards))
	copy(cards, s.boardCards)
	return cards
}

// Score is (size - 2) times the value of the stack type.
func (s *CardStack) Score() int {
	return (s.Size() - 2) * TypeValue(s.stackType)
}

// Equal reports whether both stacks hold exactly the same cards in the same order.
func (s *CardStack) Equal(other *CardStack) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	for i := range s.boardCards {
		if s.boardCards[i].Card != other.boardCards[i].Card {
			return false
		}
	}
	return true
}

// Clone returns a stack with its own copy of every card record.
func (s *CardStack) Clone() *CardStack {
	return &CardStack{boardCards: s.BoardCards(), stackType: s.stackType}
}

// Aged returns the stack with each card one turn older.
func (s *CardStack) Aged() *CardStack {
	cards := make([]BoardCard, len(s.boardCards))
	for i, bc := range s.boardCards {
		cards[i] = bc.Aged()
	}
	return &CardStack{boardCards: cards, stackType: s.stackType}
}

// split returns the cards before and after the boundary as two new stacks.
func (s *CardStack) split(boundary int) (*CardStack, *CardStack) {
	return NewCardStack(s.boardCards[:boundary]...), NewCardStack(s.boardCards[boundary:]...)
}

func (s *CardStack) String() string {
	labels := make([]string, len(s.boardCards))
	for i, bc := range s.boardCards {
		labels[i] = bc.Card.Label()
	}
	return strings.Join(labels, ",")
}

// IsMergeableWith reports whether Merge would succeed. A stack is never
// mergeable with an exact copy of itself.
func (s *CardStack) IsMergeableWith(other *CardStack) bool {
	if s.Equal(other) {
		return false
	}
	return Merge(s, other) != nil
}

// Merge ("marry") tries a followed by b, then b followed by a. It returns
// the first concatenation that is neither bogus nor a dup, or nil.
func Merge(a, b *CardStack) *CardStack {
	if married := concat(a, b); !married.Type().IsProblematic() {
		return married
	}
	if married := concat(b, a); !married.Type().IsProblematic() {
		return married
	}
	return nil
}

func concat(a, b *CardStack) *CardStack {
	cards := make([]BoardCard, 0, a.Size()+b.Size())
	cards = append(cards, a.boardCards...)
	cards = append(cards, b.boardCards...)
	return NewCardStack(cards...)
}
