package board

import "fmt"

// StackLocation addresses a stack on the board. Locations are plain
// coordinates; callers recompute them after any mutation that changes the
// number of stacks on a shelf.
type StackLocation struct {
	ShelfIndex int `json:"shelfIndex"`
	StackIndex int `json:"stackIndex"`
}

func (l StackLocation) String() string {
	return fmt.Sprintf("shelf %d stack %d", l.ShelfIndex, l.StackIndex)
}

// BoardLocation addresses one card within a stack
type BoardLocation struct {
	ShelfIndex int `json:"shelfIndex"`
	StackIndex int `json:"stackIndex"`
	CardIndex  int `json:"cardIndex"`
}

// Stack returns the location of the stack holding the card
func (l BoardLocation) Stack() StackLocation {
	return StackLocation{ShelfIndex: l.ShelfIndex, StackIndex: l.StackIndex}
}

func (l BoardLocation) String() string {
	return fmt.Sprintf("shelf %d stack %d card %d", l.ShelfIndex, l.StackIndex, l.CardIndex)
}

// MergeRequest asks for the source stack to be merged into the target stack.
type MergeRequest struct {
	Source StackLocation `json:"source"`
	Target StackLocation `json:"target"`
}
