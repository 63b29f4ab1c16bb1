package engine

import (
	"errors"
	"fmt"
	"strings"

	uuid "github.com/satori/go.uuid"
	"github.com/showell/lynrummy/deck"
	"github.com/showell/lynrummy/game"
	"github.com/showell/lynrummy/protocol"
	"go.uber.org/zap"
)

// PlayState represents the state of the current game
// Idle -> no command received yet
// InProgress -> game in progress
type PlayState int

const (
	Idle PlayState = iota
	InProgress
)

func (ps PlayState) String() string {
	if ps == InProgress {
		return "inProgress"
	}
	return "idle"
}

var (
	ErrNilGame        = errors.New("game is nil")
	ErrNotYourTurn    = errors.New("it is not your turn")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadDecision    = errors.New("bad decision")
	ErrCardNotInHand  = errors.New("card is not in your hand")
)

// GameEngine drives one game on behalf of its players. Every message is
// checked before it reaches the game, so bad input turns into an error
// instead of a panic. A GameEngine is not safe for concurrent use.
type GameEngine struct {
	id        string
	creatorID string
	playState PlayState
	game      *game.Game
	log       *zap.Logger
}

type GameEngineOpts struct {
	GameID    string
	CreatorID string
	Game      *game.Game
	Logger    *zap.Logger
}

// NewGameEngine constructs a GameEngine
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNilGame
	}
	if opts.GameID == "" {
		opts.GameID = uuid.NewV4().String()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &GameEngine{
		id:        opts.GameID,
		creatorID: opts.CreatorID,
		game:      opts.Game,
		log:       opts.Logger.With(zap.String("game_id", opts.GameID)),
	}, nil
}

func (ge *GameEngine) ID() string {
	return ge.id
}

func (ge *GameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *GameEngine) Game() *game.Game {
	return ge.game
}

func (ge *GameEngine) PlayState() PlayState {
	return ge.playState
}

// Receive applies one message from a player and returns that player's view
// of the game afterwards. Broken rules come back as a DidNothing or
// TurnFailed outcome; errors are reserved for messages that could not be
// applied at all.
func (ge *GameEngine) Receive(msg protocol.InboundMessage) (protocol.OutboundMessage, error) {
	log := ge.log.With(zap.String("player_id", msg.PlayerID), zap.Stringer("command", msg.Command))
	log.Debug("received command")

	sender, err := ge.checkSender(msg)
	if err != nil {
		log.Warn("rejected command", zap.Error(err))
		return errorMessage(msg, err), err
	}

	reply, err := ge.dispatch(msg)
	if err != nil {
		log.Warn("rejected command", zap.Error(err))
		return errorMessage(msg, err), err
	}
	ge.playState = InProgress

	if reply.Outcome == protocol.DidNothing || reply.Outcome == protocol.TurnFailed {
		log.Debug("command changed nothing", zap.Stringer("outcome", reply.Outcome), zap.String("reason", reply.Message))
	}

	return ge.buildMessage(sender, msg.Command, reply), nil
}

// Show and TurnScore are open to anyone seated at the table; everything
// else belongs to the current player.
func (ge *GameEngine) checkSender(msg protocol.InboundMessage) (*game.Player, error) {
	current := ge.game.CurrentPlayer()
	if msg.PlayerID == current.ID {
		return current, nil
	}

	if msg.Command == protocol.Show || msg.Command == protocol.TurnScore {
		for _, p := range ge.game.Players() {
			if p.ID == msg.PlayerID {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: it is %s's turn", ErrNotYourTurn, current.Name)
}

type reply struct {
	Outcome   protocol.Outcome
	Result    string
	Message   string
	TurnScore *int
}

func (ge *GameEngine) dispatch(msg protocol.InboundMessage) (reply, error) {
	g := ge.game

	switch msg.Command {
	case protocol.Show:
		return reply{Outcome: protocol.DidNothing}, nil

	case protocol.TurnScore:
		return reply{Outcome: protocol.DidNothing, Message: fmt.Sprintf("turn score: %d", g.GetTurnScore())}, nil

	case protocol.Split:
		loc, err := ge.boardLocation(msg.Decision)
		if err != nil {
			return reply{}, err
		}
		if !g.SplitStack(loc) {
			return reply{Outcome: protocol.DidNothing, Message: "a single card cannot be split"}, nil
		}
		return reply{Outcome: protocol.Changed, Message: fmt.Sprintf("split %s", loc.Stack())}, nil

	case protocol.Merge:
		req, err := ge.mergeRequest(msg.Decision)
		if err != nil {
			return reply{}, err
		}
		married := g.MergeCardStacks(req)
		if married == nil {
			return reply{Outcome: protocol.DidNothing, Message: "those stacks do not merge"}, nil
		}
		return reply{Outcome: protocol.Changed, Message: fmt.Sprintf("merged into %s (%s)", married, married.Type())}, nil

	case protocol.Move:
		if err := checkDecisionLen(msg.Decision, 3); err != nil {
			return reply{}, err
		}
		source, err := ge.stackLocation(msg.Decision[:2])
		if err != nil {
			return reply{}, err
		}
		newShelf := msg.Decision[2]
		if err := ge.checkShelf(newShelf); err != nil {
			return reply{}, err
		}
		if !g.MoveCardStackToEndOfShelf(source, newShelf) {
			return reply{Outcome: protocol.DidNothing, Message: "that stack is already at the end of the shelf"}, nil
		}
		return reply{Outcome: protocol.Changed, Message: fmt.Sprintf("moved a stack to the end of shelf %d", newShelf)}, nil

	case protocol.PlayOnStack:
		card, err := ge.cardFromHand(msg.Card)
		if err != nil {
			return reply{}, err
		}
		loc, err := ge.stackLocation(msg.Decision)
		if err != nil {
			return reply{}, err
		}
		target := g.Board().GetStackFor(loc).String()
		if !g.PlayCardOnStack(card, loc) {
			return reply{Outcome: protocol.DidNothing, Message: fmt.Sprintf("%s does not fit on %s", card, target)}, nil
		}
		return reply{Outcome: protocol.Changed, Message: fmt.Sprintf("played %s onto %s", card, target)}, nil

	case protocol.PlayOnShelf:
		card, err := ge.cardFromHand(msg.Card)
		if err != nil {
			return reply{}, err
		}
		if err := checkDecisionLen(msg.Decision, 1); err != nil {
			return reply{}, err
		}
		if err := ge.checkShelf(msg.Decision[0]); err != nil {
			return reply{}, err
		}
		g.PlayCardOnShelf(card, msg.Decision[0])
		return reply{Outcome: protocol.Changed, Message: fmt.Sprintf("dropped %s on shelf %d", card, msg.Decision[0])}, nil

	case protocol.CompleteTurn:
		return ge.completeTurn(), nil

	case protocol.Undo:
		g.UndoMistakes()
		return reply{Outcome: protocol.Changed, Message: "back to the last clean board"}, nil
	}

	return reply{}, fmt.Errorf("%w: %d", ErrUnknownCommand, msg.Command)
}

func (ge *GameEngine) completeTurn() reply {
	g := ge.game
	player := g.CurrentPlayer()
	score := g.GetTurnScore()

	result := g.CompleteTurn()
	if !result.IsSuccess() {
		return reply{
			Outcome: protocol.TurnFailed,
			Result:  result.String(),
			Message: "the board is not clean yet; fix it or undo",
		}
	}

	ge.log.Info("turn completed",
		zap.String("player_id", player.ID),
		zap.Stringer("result", result),
		zap.Int("turn_score", score),
		zap.Int("total_score", player.TotalScore),
	)

	return reply{
		Outcome:   protocol.TurnEnded,
		Result:    result.String(),
		Message:   fmt.Sprintf("%s scored %d (%s); over to %s", player.Name, score, result, g.CurrentPlayer().Name),
		TurnScore: &score,
	}
}

func (ge *GameEngine) cardFromHand(label string) (deck.Card, error) {
	value, suit, err := deck.ParseFace(strings.ToUpper(label))
	if err != nil {
		return deck.Card{}, fmt.Errorf("%w: %s", ErrBadDecision, err)
	}
	hc, ok := ge.game.CurrentPlayer().Hand.Find(value, suit)
	if !ok {
		return deck.Card{}, fmt.Errorf("%w: %s", ErrCardNotInHand, label)
	}
	return hc.Card, nil
}

func (ge *GameEngine) buildMessage(p *game.Player, cmd protocol.Cmd, r reply) protocol.OutboundMessage {
	g := ge.game
	current := g.CurrentPlayer()

	turnScore := g.GetTurnScore()
	if r.TurnScore != nil {
		turnScore = *r.TurnScore
	}

	return protocol.OutboundMessage{
		PlayerID:    p.ID,
		Command:     cmd,
		Outcome:     r.Outcome,
		Result:      r.Result,
		Message:     r.Message,
		Board:       boardLines(g.Board()),
		Hand:        handLabels(p.Hand),
		TurnScore:   turnScore,
		TotalScore:  p.TotalScore,
		CurrentTurn: protocol.Player{PlayerID: current.ID, Name: current.Name},
		DeckCount:   g.Deck().Len(),
	}
}

func errorMessage(msg protocol.InboundMessage, err error) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		PlayerID: msg.PlayerID,
		Command:  protocol.Error,
		Outcome:  protocol.DidNothing,
		Error:    err.Error(),
	}
}
