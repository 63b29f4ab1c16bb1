package engine

import (
	"fmt"
	"strings"

	"github.com/showell/lynrummy/board"
	"github.com/showell/lynrummy/game"
)

func handLabels(h *game.Hand) []string {
	return strings.Fields(h.String())
}

func checkDecisionLen(decision []int, want int) error {
	if len(decision) != want {
		return fmt.Errorf("%w: expected %d numbers, got %d", ErrBadDecision, want, len(decision))
	}
	return nil
}

func (ge *GameEngine) checkShelf(shelfIndex int) error {
	if n := ge.game.Board().NumShelves(); shelfIndex < 0 || shelfIndex >= n {
		return fmt.Errorf("%w: no shelf %d (the board has %d)", ErrBadDecision, shelfIndex, n)
	}
	return nil
}

func (ge *GameEngine) stackLocation(decision []int) (board.StackLocation, error) {
	if err := checkDecisionLen(decision, 2); err != nil {
		return board.StackLocation{}, err
	}
	loc := board.StackLocation{ShelfIndex: decision[0], StackIndex: decision[1]}
	if !ge.game.Board().HasStack(loc) {
		return board.StackLocation{}, fmt.Errorf("%w: no stack at %s", ErrBadDecision, loc)
	}
	return loc, nil
}

func (ge *GameEngine) boardLocation(decision []int) (board.BoardLocation, error) {
	if err := checkDecisionLen(decision, 3); err != nil {
		return board.BoardLocation{}, err
	}
	stack, err := ge.stackLocation(decision[:2])
	if err != nil {
		return board.BoardLocation{}, err
	}
	size := ge.game.Board().GetStackFor(stack).Size()
	if cardIndex := decision[2]; cardIndex < 0 || cardIndex >= size {
		return board.BoardLocation{}, fmt.Errorf("%w: card %d is outside a stack of %d", ErrBadDecision, cardIndex, size)
	}
	return board.BoardLocation{ShelfIndex: stack.ShelfIndex, StackIndex: stack.StackIndex, CardIndex: decision[2]}, nil
}

func (ge *GameEngine) mergeRequest(decision []int) (board.MergeRequest, error) {
	if err := checkDecisionLen(decision, 4); err != nil {
		return board.MergeRequest{}, err
	}
	source, err := ge.stackLocation(decision[:2])
	if err != nil {
		return board.MergeRequest{}, err
	}
	target, err := ge.stackLocation(decision[2:])
	if err != nil {
		return board.MergeRequest{}, err
	}
	return board.MergeRequest{Source: source, Target: target}, nil
}
