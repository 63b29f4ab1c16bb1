package deck

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLabel = errors.New("invalid card label")

const (
	valueLabels = "A23456789TJQK"
	suitLabels  = "CDSH"
)

// ValueFromLabel parses a single value label. Ten is "T"; "10" is rejected.
func ValueFromLabel(label string) (Value, error) {
	if len(label) != 1 {
		return 0, fmt.Errorf("%w: value %q", ErrInvalidLabel, label)
	}
	idx := strings.Index(valueLabels, label)
	if idx < 0 {
		return 0, fmt.Errorf("%w: value %q", ErrInvalidLabel, label)
	}
	return Value(idx + 1), nil
}

// SuitFromLabel parses a single suit label
func SuitFromLabel(label string) (Suit, error) {
	if len(label) != 1 {
		return 0, fmt.Errorf("%w: suit %q", ErrInvalidLabel, label)
	}
	idx := strings.Index(suitLabels, label)
	if idx < 0 {
		return 0, fmt.Errorf("%w: suit %q", ErrInvalidLabel, label)
	}
	return Suit(idx), nil
}

// ParseFace parses a two-character label such as "3H" into a value and suit.
func ParseFace(label string) (Value, Suit, error) {
	if len(label) != 2 {
		return 0, 0, fmt.Errorf("%w: %q must be two characters", ErrInvalidLabel, label)
	}
	value, err := ValueFromLabel(label[:1])
	if err != nil {
		return 0, 0, err
	}
	suit, err := SuitFromLabel(label[1:])
	if err != nil {
		return 0, 0, err
	}
	return value, suit, nil
}

// ParseCard parses a two-character label into a card from the given pack.
func ParseCard(label string, origin OriginDeck) (Card, error) {
	value, suit, err := ParseFace(label)
	if err != nil {
		return Card{}, err
	}
	return NewCard(value, suit, origin), nil
}

// ParseCards parses a comma-joined label list, e.g. "3H,3S,3D".
func ParseCards(labels string, origin OriginDeck) ([]Card, error) {
	if labels == "" {
		return []Card{}, nil
	}
	parts := strings.Split(labels, ",")
	cards := make([]Card, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCard(strings.TrimSpace(p), origin)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures known to be valid.
func MustParseCards(labels string, origin OriginDeck) []Card {
	cards, err := ParseCards(labels, origin)
	if err != nil {
		panic(err)
	}
	return cards
}

// Label returns the two-character shorthand for the card
func (c Card) Label() string {
	return string(valueLabels[c.Value-1]) + string(suitLabels[c.Suit])
}
