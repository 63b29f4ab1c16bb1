package board

import (
	"fmt"
	"strings"

	"github.com/showell/lynrummy/deck"
)

// Shelf is an ordered row of stacks. Order only matters for addressing.
type Shelf struct {
	stacks []*CardStack
}

// NewShelf constructs a shelf holding the given stacks
func NewShelf(stacks ...*CardStack) *Shelf {
	s := &Shelf{stacks: []*CardStack{}}
	s.stacks = append(s.stacks, stacks...)
	return s
}

// ShelfFromShorthand builds a shelf from space-separated stacks,
// e.g. "KS,AS,2S,3S TD,JD,QD,KD". An empty string is an empty shelf.
func ShelfFromShorthand(text string, origin deck.OriginDeck) (*Shelf, error) {
	shelf := NewShelf()
	for _, labels := range strings.Fields(text) {
		stack, err := StackFromShorthand(labels, origin, FirmlyOnBoard)
		if err != nil {
			return nil, err
		}
		shelf.AppendStack(stack)
	}
	return shelf, nil
}

func (s *Shelf) checkIndex(stackIndex int) {
	if stackIndex < 0 || stackIndex >= len(s.stacks) {
		panic(fmt.Sprintf("stack index %d out of range for shelf of %d stacks", stackIndex, len(s.stacks)))
	}
}

// Len returns the number of stacks on the shelf
func (s *Shelf) Len() int {
	return len(s.stacks)
}

// Stacks returns the shelf's stacks in order
func (s *Shelf) Stacks() []*CardStack {
	stacks := make([]*CardStack, len(s.stacks))
	copy(stacks, s.stacks)
	return stacks
}

// Stack returns the stack at the index
func (s *Shelf) Stack(stackIndex int) *CardStack {
	s.checkIndex(stackIndex)
	return s.stacks[stackIndex]
}

// IsClean reports whether every stack on the shelf is complete
func (s *Shelf) IsClean() bool {
	for _, stack := range s.stacks {
		if !stack.Type().IsComplete() {
			return false
		}
	}
	return true
}

// Score sums the stack scores
func (s *Shelf) Score() int {
	score := 0
	for _, stack := range s.stacks {
		score += stack.Score()
	}
	return score
}

// ExtendStackWithCard marries a single card onto an existing stack.
// It returns the new stack size, or false when the card does not fit;
// the shelf is unchanged in that case.
func (s *Shelf) ExtendStackWithCard(stackIndex int, card deck.Card) (int, bool) {
	s.checkIndex(stackIndex)
	married := Merge(s.stacks[stackIndex], SingletonStack(card))
	if married == nil {
		return 0, false
	}
	s.stacks[stackIndex] = married
	return married.Size(), true
}

// splitBoundary favours growing the shorter side.
func splitBoundary(size, cardIndex int) int {
	if cardIndex+1 <= size/2 {
		return cardIndex + 1
	}
	return cardIndex
}

// SplitStack breaks a stack in two around cardIndex. Stacks to the right
// move up one index. A one-card stack is left alone and false is returned.
func (s *Shelf) SplitStack(stackIndex, cardIndex int) bool {
	s.checkIndex(stackIndex)
	stack := s.stacks[stackIndex]
	if stack.Size() == 1 {
		return false
	}
	if cardIndex < 0 || cardIndex >= stack.Size() {
		panic(fmt.Sprintf("card index %d out of range for stack of %d cards", cardIndex, stack.Size()))
	}

	left, right := stack.split(splitBoundary(stack.Size(), cardIndex))

	stacks := make([]*CardStack, 0, len(s.stacks)+1)
	stacks = append(stacks, s.stacks[:stackIndex]...)
	stacks = append(stacks, left, right)
	stacks = append(stacks, s.stacks[stackIndex+1:]...)
	s.stacks = stacks
	return true
}

// AddSingletonCard puts a freshly played card at the end of the shelf.
func (s *Shelf) AddSingletonCard(card deck.Card) {
	s.AppendStack(SingletonStack(card))
}

// IsLastStack reports whether the stack is the final one on the shelf
func (s *Shelf) IsLastStack(stackIndex int) bool {
	s.checkIndex(stackIndex)
	return stackIndex == len(s.stacks)-1
}

// RemoveStack takes a stack off the shelf; later stacks move down one index.
func (s *Shelf) RemoveStack(stackIndex int) *CardStack {
	s.checkIndex(stackIndex)
	stack := s.stacks[stackIndex]
	s.stacks = append(s.stacks[:stackIndex:stackIndex], s.stacks[stackIndex+1:]...)
	return stack
}

// AppendStack adds a stack to the end of the shelf
func (s *Shelf) AppendStack(stack *CardStack) {
	s.stacks = append(s.stacks, stack)
}

func (s *Shelf) replaceStack(stackIndex int, stack *CardStack) {
	s.checkIndex(stackIndex)
	s.stacks[stackIndex] = stack
}

func (s *Shelf) ageCards() {
	for i, stack := range s.stacks {
		s.stacks[i] = stack.Aged()
	}
}

// Clone deep-copies the shelf
func (s *Shelf) Clone() *Shelf {
	stacks := make([]*CardStack, len(s.stacks))
	for i, stack := range s.stacks {
		stacks[i] = stack.Clone()
	}
	return &Shelf{stacks: stacks}
}

func (s *Shelf) String() string {
	parts := make([]string, len(s.stacks))
	for i, stack := range s.stacks {
		parts[i] = stack.String()
	}
	return strings.Join(parts, " ")
}
