package board

import (
	"fmt"
	"strings"

	"github.com/showell/lynrummy/deck"
)

// Board is the shared, public area of the game: an ordered list of shelves.
type Board struct {
	shelves []*Shelf
}

// New constructs a board from shelves
func New(shelves ...*Shelf) *Board {
	b := &Board{shelves: []*Shelf{}}
	b.shelves = append(b.shelves, shelves...)
	return b
}

// NewEmpty constructs a board with the given number of empty shelves
func NewEmpty(numShelves int) *Board {
	b := &Board{shelves: make([]*Shelf, numShelves)}
	for i := range b.shelves {
		b.shelves[i] = NewShelf()
	}
	return b
}

// FromShorthand builds a board with one shelf per argument. Cards come
// from the given pack and start firmly on the board.
func FromShorthand(origin deck.OriginDeck, shelves ...string) (*Board, error) {
	b := New()
	for _, text := range shelves {
		shelf, err := ShelfFromShorthand(text, origin)
		if err != nil {
			return nil, err
		}
		b.AddShelf(shelf)
	}
	return b, nil
}

// MustFromShorthand is FromShorthand for fixtures known to be valid.
func MustFromShorthand(origin deck.OriginDeck, shelves ...string) *Board {
	b, err := FromShorthand(origin, shelves...)
	if err != nil {
		panic(err)
	}
	return b
}

// AddShelf appends a shelf to the bottom of the board
func (b *Board) AddShelf(shelf *Shelf) {
	b.shelves = append(b.shelves, shelf)
}

func (b *Board) shelf(shelfIndex int) *Shelf {
	if shelfIndex < 0 || shelfIndex >= len(b.shelves) {
		panic(fmt.Sprintf("shelf index %d out of range for board of %d shelves", shelfIndex, len(b.shelves)))
	}
	return b.shelves[shelfIndex]
}

// Shelf returns the shelf at the index
func (b *Board) Shelf(shelfIndex int) *Shelf {
	return b.shelf(shelfIndex)
}

// Shelves returns the board's shelves in order
func (b *Board) Shelves() []*Shelf {
	shelves := make([]*Shelf, len(b.shelves))
	copy(shelves, b.shelves)
	return shelves
}

func (b *Board) NumShelves() int {
	return len(b.shelves)
}

// IsClean holds when every stack on every shelf is a set or a run.
// Only a clean board lets a turn end.
func (b *Board) IsClean() bool {
	for _, shelf := range b.shelves {
		if !shelf.IsClean() {
			return false
		}
	}
	return true
}

// Score sums the score of every stack; dirty boards score too.
func (b *Board) Score() int {
	score := 0
	for _, shelf := range b.shelves {
		score += shelf.Score()
	}
	return score
}

// GetCards returns every card on the board, shelf by shelf
func (b *Board) GetCards() []BoardCard {
	cards := []BoardCard{}
	for _, shelf := range b.shelves {
		for _, stack := range shelf.stacks {
			cards = append(cards, stack.boardCards...)
		}
	}
	return cards
}

// GetStackFor returns the stack at the location
func (b *Board) GetStackFor(loc StackLocation) *CardStack {
	return b.shelf(loc.ShelfIndex).Stack(loc.StackIndex)
}

// GetStackLocations lists the location of every stack in board order
func (b *Board) GetStackLocations() []StackLocation {
	locs := []StackLocation{}
	for i, shelf := range b.shelves {
		for j := range shelf.stacks {
			locs = append(locs, StackLocation{ShelfIndex: i, StackIndex: j})
		}
	}
	return locs
}

// HasStack reports whether the location points at a stack.
func (b *Board) HasStack(loc StackLocation) bool {
	if loc.ShelfIndex < 0 || loc.ShelfIndex >= len(b.shelves) {
		return false
	}
	return loc.StackIndex >= 0 && loc.StackIndex < b.shelves[loc.ShelfIndex].Len()
}

func (b *Board) IsLastStack(loc StackLocation) bool {
	return b.shelf(loc.ShelfIndex).IsLastStack(loc.StackIndex)
}

// ExtendStackWithCard plays a card onto the stack at loc
func (b *Board) ExtendStackWithCard(loc StackLocation, card deck.Card) (int, bool) {
	return b.shelf(loc.ShelfIndex).ExtendStackWithCard(loc.StackIndex, card)
}

// SplitStack splits the stack holding the card at loc
func (b *Board) SplitStack(loc BoardLocation) bool {
	return b.shelf(loc.ShelfIndex).SplitStack(loc.StackIndex, loc.CardIndex)
}

// AddSingletonCard drops a card into empty space at the end of a shelf
func (b *Board) AddSingletonCard(shelfIndex int, card deck.Card) {
	b.shelf(shelfIndex).AddSingletonCard(card)
}

// MoveCardStackToEndOfShelf moves the source stack to the end of another
// (or the same) shelf. Stacks after the source shift down by one.
func (b *Board) MoveCardStackToEndOfShelf(source StackLocation, newShelfIndex int) {
	target := b.shelf(newShelfIndex)
	stack := b.shelf(source.ShelfIndex).RemoveStack(source.StackIndex)
	target.AppendStack(stack)
}

// MergeCardStacks merges the source stack into the target stack. It
// returns the merged stack, or nil when the locations are the same or the
// stacks do not fit together in either order.
func (b *Board) MergeCardStacks(req MergeRequest) *CardStack {
	source, target := req.Source, req.Target
	if source == target {
		return nil
	}

	married := Merge(b.GetStackFor(target), b.GetStackFor(source))
	if married == nil {
		return nil
	}

	b.shelf(source.ShelfIndex).RemoveStack(source.StackIndex)

	// removing the source shifts the target left
	targetIndex := target.StackIndex
	if source.ShelfIndex == target.ShelfIndex && source.StackIndex < target.StackIndex {
		targetIndex--
	}
	b.shelf(target.ShelfIndex).replaceStack(targetIndex, married)
	return married
}

// AgeCards advances every card's display state by one turn.
func (b *Board) AgeCards() {
	for _, shelf := range b.shelves {
		shelf.ageCards()
	}
}

// Clone deep-copies the board so later mutation cannot reach the copy.
func (b *Board) Clone() *Board {
	shelves := make([]*Shelf, len(b.shelves))
	for i, shelf := range b.shelves {
		shelves[i] = shelf.Clone()
	}
	return &Board{shelves: shelves}
}

func (b *Board) String() string {
	lines := make([]string, len(b.shelves))
	for i, shelf := range b.shelves {
		lines[i] = shelf.String()
	}
	return strings.Join(lines, "\n")
}
