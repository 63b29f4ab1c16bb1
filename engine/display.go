package engine

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/showell/lynrummy/board"
	"github.com/showell/lynrummy/game"
)

const (
	helpText = `Commands (all numbers count from 0):
  play <card> <shelf> <stack>         play a card from your hand onto a stack
  drop <card> <shelf>                 put a card from your hand at the end of a shelf
  split <shelf> <stack> <card>        split a stack next to one of its cards
  merge <shelf> <stack> <shelf> <stack>  merge the first stack into the second
  move <shelf> <stack> <shelf>        move a stack to the end of a shelf
  undo                                go back to the last clean board
  score                               show your score for this turn
  board                               show the board and your hand
  done                                finish your turn
  quit                                leave the game
`
	turnBannerText = "\n=== %s's turn ===\n"
	promptText     = "%s> "
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// freshly played cards are starred, cards from the previous turn get a plus
func boardCardText(bc board.BoardCard) string {
	switch bc.State {
	case board.FreshlyPlayed:
		return bc.Card.String() + "*"
	case board.FreshlyPlayedByLastPlayer:
		return bc.Card.String() + "+"
	}
	return bc.Card.String()
}

func stackText(stack *board.CardStack) string {
	labels := []string{}
	for _, bc := range stack.BoardCards() {
		labels = append(labels, boardCardText(bc))
	}
	return strings.Join(labels, ",")
}

func boardLines(b *board.Board) []string {
	lines := make([]string, 0, b.NumShelves())
	for i, shelf := range b.Shelves() {
		line := fmt.Sprintf("%d:", i)
		for j, stack := range shelf.Stacks() {
			line += fmt.Sprintf(" [%d] %s", j, stackText(stack))
		}
		lines = append(lines, line)
	}
	return lines
}

// BoardText renders one line per shelf with each stack's index, e.g.
// "1: [0] 2H,3H,4H,5H* [1] 7S,7D,7C".
func BoardText(b *board.Board) string {
	return strings.Join(boardLines(b), "\n") + "\n"
}

// HandText lists the hand in suit order; freshly drawn cards are starred.
func HandText(h *game.Hand) string {
	cards := h.Cards()
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i].Card, cards[j].Card
		if a.Suit != b.Suit {
			return a.Suit < b.Suit
		}
		return a.Value < b.Value
	})

	labels := make([]string, len(cards))
	for i, hc := range cards {
		labels[i] = hc.String()
		if hc.State == game.FreshlyDrawn {
			labels[i] += "*"
		}
	}
	return "Your hand: " + strings.Join(labels, " ") + "\n"
}
