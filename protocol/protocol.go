package protocol

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	Show
	// board rearrangements
	Split
	Merge
	Move
	// plays from the hand
	PlayOnStack
	PlayOnShelf
	CompleteTurn
	Undo
	TurnScore
	Error
)

var CmdNames = map[Cmd]string{
	Null:         "Null",
	Show:         "Show",
	Split:        "Split",
	Merge:        "Merge",
	Move:         "Move",
	PlayOnStack:  "PlayOnStack",
	PlayOnShelf:  "PlayOnShelf",
	CompleteTurn: "CompleteTurn",
	Undo:         "Undo",
	TurnScore:    "TurnScore",
	Error:        "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":         Null,
	"Show":         Show,
	"Split":        Split,
	"Merge":        Merge,
	"Move":         Move,
	"PlayOnStack":  PlayOnStack,
	"PlayOnShelf":  PlayOnShelf,
	"CompleteTurn": CompleteTurn,
	"Undo":         Undo,
	"TurnScore":    TurnScore,
	"Error":        Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// Outcome says what a command did to the game
type Outcome int

const (
	// Changed means the board or hand moved
	Changed Outcome = iota
	// DidNothing leaves the game as it was, either by request or because
	// the move broke a rule
	DidNothing
	TurnEnded
	// TurnFailed means the board was dirty and the turn goes on
	TurnFailed
)

var outcomeNames = []string{"Changed", "DidNothing", "TurnEnded", "TurnFailed"}

func (o Outcome) String() string {
	return outcomeNames[o]
}
