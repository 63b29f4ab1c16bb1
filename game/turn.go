package game

const (
	EmptyHandBonus    = 1000
	VictoryBonus      = 500
	CardsPlayedFactor = 100
)

// PlayerTurn is the running score of the active player's turn. It exists
// only between StartTurn and EndTurn.
type PlayerTurn struct {
	StartingBoardScore    int
	CardsPlayedDuringTurn int
	EmptyHandBonus        int
	VictoryBonus          int
}

func newPlayerTurn(boardScore int) *PlayerTurn {
	return &PlayerTurn{StartingBoardScore: boardScore}
}

func (pt *PlayerTurn) IncrementCardsPlayed() {
	pt.CardsPlayedDuringTurn++
}

// UpdateScoreForEmptyHand awards the empty-hand bonus, plus the victory
// bonus for the first player in the game to get there. Calling it again
// awards nothing more.
func (pt *PlayerTurn) UpdateScoreForEmptyHand(isVictor bool) {
	pt.EmptyHandBonus = EmptyHandBonus
	if isVictor {
		pt.VictoryBonus = VictoryBonus
	}
}

// TurnScore is the board gain plus the bonuses earned so far.
func (pt *PlayerTurn) TurnScore(boardScore int) int {
	boardDelta := boardScore - pt.StartingBoardScore
	cardsScore := CardsPlayedFactor * pt.CardsPlayedDuringTurn * pt.CardsPlayedDuringTurn
	return boardDelta + cardsScore + pt.EmptyHandBonus + pt.VictoryBonus
}
