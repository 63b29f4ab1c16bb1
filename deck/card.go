package deck

import "fmt"

// Value represents the face value of a card.
// Values are cyclic: the successor of King is Ace.
type Value int

var valueNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Value = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (v Value) valid() bool {
	return v >= Ace && v <= King
}

// Successor returns the next value around the ace: King -> Ace -> Two.
func (v Value) Successor() Value {
	if v == King {
		return Ace
	}
	return v + 1
}

func (v Value) String() string {
	if !v.valid() {
		return fmt.Sprintf("Value(%d)", int(v))
	}
	return valueNames[v]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Spades", "Hearts"}

const (
	Club Suit = iota
	Diamond
	Spade
	Heart
)

func (s Suit) valid() bool {
	return s >= Club && s <= Heart
}

func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Color is derived from the suit.
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Color returns black for clubs and spades, red for diamonds and hearts.
func (s Suit) Color() Color {
	if s == Diamond || s == Heart {
		return Red
	}
	return Black
}

// OriginDeck tells apart the two physical packs the game is played with.
type OriginDeck int

const (
	DeckOne OriginDeck = iota
	DeckTwo
)

func (o OriginDeck) String() string {
	if o == DeckTwo {
		return "deck 2"
	}
	return "deck 1"
}

// Card is an immutable playing card. Two cards compare equal with == only
// if they are the same physical card, origin pack included.
type Card struct {
	Value  Value
	Suit   Suit
	Origin OriginDeck
}

// NewCard constructs a card, panicking on out-of-range values
func NewCard(value Value, suit Suit, origin OriginDeck) Card {
	if !value.valid() || !suit.valid() || (origin != DeckOne && origin != DeckTwo) {
		panic(fmt.Sprintf("card out of range: value %d suit %d origin %d", value, suit, origin))
	}
	return Card{Value: value, Suit: suit, Origin: origin}
}

// Color returns the card's color
func (c Card) Color() Color {
	return c.Suit.Color()
}

// SameFace reports whether two cards have the same value and suit,
// ignoring which pack they came from.
func (c Card) SameFace(other Card) bool {
	return c.Value == other.Value && c.Suit == other.Suit
}

// String returns the two-character shorthand, e.g. "TD".
func (c Card) String() string {
	return c.Label()
}

// Name returns the long form, e.g. "Ten of Diamonds".
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Value, c.Suit)
}
