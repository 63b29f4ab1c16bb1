package board

// StackType is the classification of an ordered group of board cards.
type StackType int

const (
	Incomplete StackType = iota
	Bogus
	Dup
	Set
	PureRun
	RedBlackRun
)

var stackTypeNames = map[StackType]string{
	Incomplete:  "incomplete",
	Bogus:       "bogus",
	Dup:         "dup",
	Set:         "set",
	PureRun:     "pure run",
	RedBlackRun: "red/black alternating",
}

func (st StackType) String() string {
	return stackTypeNames[st]
}

// IsComplete reports whether a stack of this type may sit on a clean board.
func (st StackType) IsComplete() bool {
	switch st {
	case Set, PureRun, RedBlackRun:
		return true
	}
	return false
}

// IsProblematic reports whether the cards can never become legal by adding
// more cards.
func (st StackType) IsProblematic() bool {
	return st == Bogus || st == Dup
}

// TypeValue is the per-card worth of a stack of the given type.
func TypeValue(st StackType) int {
	switch st {
	case PureRun:
		return 90
	case Set:
		return 60
	case RedBlackRun:
		return 50
	}
	return 0
}
