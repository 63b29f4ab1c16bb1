package protocol

type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// InboundMessage is a message from Player to GameEngine.
// Card holds a two-character label such as "TD"; Decision holds the
// shelf, stack and card indices the command needs.
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	Command  Cmd    `json:"command"`
	Card     string `json:"card,omitempty"`
	Decision []int  `json:"decision"`
}

// OutboundMessage is a message from GameEngine to Player
type OutboundMessage struct {
	PlayerID    string   `json:"playerID"`
	Command     Cmd      `json:"command"`
	Outcome     Outcome  `json:"outcome"`
	Result      string   `json:"result,omitempty"`
	Message     string   `json:"message"`
	Board       []string `json:"board"`
	Hand        []string `json:"hand"`
	TurnScore   int      `json:"turnScore"`
	TotalScore  int      `json:"totalScore"`
	CurrentTurn Player   `json:"currentTurn,omitempty"`
	DeckCount   int      `json:"deckCount"`
	Error       string   `json:"error,omitempty"`
}
