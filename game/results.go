package game

// CompleteTurnResult is the outcome of trying to end a turn
type CompleteTurnResult int

const (
	Failure CompleteTurnResult = iota
	Success
	SuccessButNeedsCards
	SuccessAsVictor
	SuccessWithHandEmptied
)

var completeTurnResultNames = map[CompleteTurnResult]string{
	Failure:                "failure",
	Success:                "success",
	SuccessButNeedsCards:   "success but needs cards",
	SuccessAsVictor:        "success as victor",
	SuccessWithHandEmptied: "success with hand emptied",
}

func (r CompleteTurnResult) String() string {
	return completeTurnResultNames[r]
}

// IsSuccess reports whether the turn actually ended
func (r CompleteTurnResult) IsSuccess() bool {
	return r != Failure
}

// cards drawn at the end of a turn, by result
var cardsToDraw = map[CompleteTurnResult]int{
	SuccessButNeedsCards:   3,
	SuccessAsVictor:        5,
	SuccessWithHandEmptied: 5,
}
