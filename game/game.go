package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/showell/lynrummy/board"
	"github.com/showell/lynrummy/deck"
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrNotEnoughCards = errors.New("not enough cards in the deck to deal")
	ErrInvalidBoard   = errors.New("invalid initial board")
)

const (
	minPlayers      = 2
	DefaultDealSize = 15
)

// DefaultInitialShelves is the opening board, one string per shelf.
var DefaultInitialShelves = []string{
	"KS,AS,2S,3S TD,JD,QD,KD",
	"2H,3H,4H 7S,7D,7C",
	"AC,AD,AH 2C,3D,4C,5H,6S,7H",
}

// Game is one session: the board, the deck, the players, and whose turn it
// is. Every operation works on this aggregate; nothing is global.
type Game struct {
	board            *board.Board
	deck             deck.Deck
	players          []*Player
	currentIdx       int
	hasVictorAlready bool
	snapshot         *Snapshot
}

// GameOpts configures a fresh game
type GameOpts struct {
	PlayerNames []string
	// InitialShelves lists the opening stacks in shorthand, one string per
	// shelf. Nil means DefaultInitialShelves.
	InitialShelves []string
	ExtraShelves   int
	DealSize       int
	Rand           *rand.Rand
}

// ExistingOpts adopts state that was built elsewhere
type ExistingOpts struct {
	Board              *board.Board
	Deck               deck.Deck
	Players            []*Player
	CurrentPlayerIndex int
	HasVictorAlready   bool
}

// New builds the opening board from pack one, shuffles what is left of the
// deck, deals each player a hand and starts the first player's turn.
func New(opts GameOpts) (*Game, error) {
	if len(opts.PlayerNames) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if opts.DealSize <= 0 {
		opts.DealSize = DefaultDealSize
	}
	if opts.InitialShelves == nil {
		opts.InitialShelves = DefaultInitialShelves
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := deck.New()
	b, err := initialBoard(d, opts.InitialShelves)
	if err != nil {
		return nil, err
	}
	for _, bc := range b.GetCards() {
		d.Remove(bc.Card)
	}
	for i := 0; i < opts.ExtraShelves; i++ {
		b.AddShelf(board.NewShelf())
	}

	if len(opts.PlayerNames)*opts.DealSize > d.Len() {
		return nil, fmt.Errorf("%w: %d players need %d cards each, %d left",
			ErrNotEnoughCards, len(opts.PlayerNames), opts.DealSize, d.Len())
	}

	d.Shuffle(opts.Rand)

	players := make([]*Player, 0, len(opts.PlayerNames))
	for _, name := range opts.PlayerNames {
		players = append(players, NewPlayer("", name, NewHand(d.TakeFromTop(opts.DealSize), Normal)))
	}

	return Existing(ExistingOpts{Board: b, Deck: d, Players: players}), nil
}

func initialBoard(d deck.Deck, shelves []string) (*board.Board, error) {
	b, err := board.FromShorthand(deck.DeckOne, shelves...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBoard, err)
	}
	if !b.IsClean() {
		return nil, fmt.Errorf("%w: opening stacks must all be complete", ErrInvalidBoard)
	}
	seen := map[deck.Card]struct{}{}
	for _, bc := range b.GetCards() {
		if _, ok := seen[bc.Card]; ok {
			return nil, fmt.Errorf("%w: %s appears more than once", ErrInvalidBoard, bc.Card)
		}
		if !d.Contains(bc.Card) {
			return nil, fmt.Errorf("%w: %s is not in the deck", ErrInvalidBoard, bc.Card)
		}
		seen[bc.Card] = struct{}{}
	}
	return b, nil
}

// Existing constructs a game from prebuilt parts and starts the current
// player's turn.
func Existing(opts ExistingOpts) *Game {
	if opts.Board == nil {
		panic("existing game must have a board")
	}
	if len(opts.Players) < minPlayers {
		panic("existing game must have at least two players")
	}
	if opts.CurrentPlayerIndex < 0 || opts.CurrentPlayerIndex >= len(opts.Players) {
		panic(fmt.Sprintf("current player %d out of range", opts.CurrentPlayerIndex))
	}
	if opts.Deck == nil {
		opts.Deck = deck.Deck{}
	}

	g := &Game{
		board:            opts.Board,
		deck:             opts.Deck,
		players:          opts.Players,
		currentIdx:       opts.CurrentPlayerIndex,
		hasVictorAlready: opts.HasVictorAlready,
	}
	g.StartTurn()
	return g
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Deck returns a copy of the cards left to draw.
func (g *Game) Deck() deck.Deck {
	return append(deck.Deck{}, g.deck...)
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.currentIdx]
}

func (g *Game) CurrentPlayerIndex() int {
	return g.currentIdx
}

// HasVictorAlready reports whether someone has emptied their hand and
// claimed the victory bonus.
func (g *Game) HasVictorAlready() bool {
	return g.hasVictorAlready
}

// Snapshot returns the current clean-board checkpoint
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot
}

// GetTurnScore is the active player's score for the turn so far.
func (g *Game) GetTurnScore() int {
	return g.CurrentPlayer().Turn().TurnScore(g.board.Score())
}

// StartTurn opens the current player's turn and checkpoints the board.
func (g *Game) StartTurn() {
	player := g.CurrentPlayer()
	player.StartTurn(g.board.Score())
	g.snapshot = takeSnapshot(g.board, player)
}

// checkpoint refreshes the snapshot whenever a move leaves the board clean.
func (g *Game) checkpoint() {
	if g.board.IsClean() {
		g.snapshot = takeSnapshot(g.board, g.CurrentPlayer())
	}
}

func (g *Game) mustHold(card deck.Card) {
	if !g.CurrentPlayer().Hand.Contains(card) {
		panic(fmt.Sprintf("card %s (%s) is not in %s's hand", card, card.Origin, g.CurrentPlayer().Name))
	}
}

func (g *Game) cardPlayed(card deck.Card) {
	player := g.CurrentPlayer()
	player.Hand.Remove(card)

	turn := player.Turn()
	turn.IncrementCardsPlayed()
	if player.Hand.IsEmpty() {
		turn.UpdateScoreForEmptyHand(!g.hasVictorAlready)
	}
	g.checkpoint()
}

// PlayCardOnStack plays a hand card onto a board stack. It returns false,
// changing nothing, when the card does not fit.
func (g *Game) PlayCardOnStack(card deck.Card, loc board.StackLocation) bool {
	g.mustHold(card)
	if _, ok := g.board.ExtendStackWithCard(loc, card); !ok {
		return false
	}
	g.cardPlayed(card)
	return true
}

// PlayCardOnShelf drops a hand card as a new stack at the end of a shelf.
func (g *Game) PlayCardOnShelf(card deck.Card, shelfIndex int) {
	g.mustHold(card)
	g.board.AddSingletonCard(shelfIndex, card)
	g.cardPlayed(card)
}

// SplitStack splits a board stack; false means there was nothing to split.
func (g *Game) SplitStack(loc board.BoardLocation) bool {
	if !g.board.SplitStack(loc) {
		return false
	}
	g.checkpoint()
	return true
}

// MergeCardStacks merges two board stacks, or returns nil when they do not fit.
func (g *Game) MergeCardStacks(req board.MergeRequest) *board.CardStack {
	married := g.board.MergeCardStacks(req)
	if married == nil {
		return nil
	}
	g.checkpoint()
	return married
}

// MoveCardStackToEndOfShelf moves a stack to the end of a shelf. Moving the
// last stack of a shelf to the end of the same shelf is refused.
func (g *Game) MoveCardStackToEndOfShelf(source board.StackLocation, newShelfIndex int) bool {
	if source.ShelfIndex == newShelfIndex && g.board.IsLastStack(source) {
		return false
	}
	g.board.MoveCardStackToEndOfShelf(source, newShelfIndex)
	g.checkpoint()
	return true
}

// CompleteTurn ends the active player's turn if the board is clean. On a
// dirty board it returns Failure and nothing changes.
func (g *Game) CompleteTurn() CompleteTurnResult {
	if !g.board.IsClean() {
		return Failure
	}

	player := g.CurrentPlayer()
	turn := player.Turn()

	var result CompleteTurnResult
	switch {
	case turn.CardsPlayedDuringTurn == 0:
		result = SuccessButNeedsCards
	case player.Hand.IsEmpty() && !g.hasVictorAlready:
		result = SuccessAsVictor
		g.hasVictorAlready = true
	case player.Hand.IsEmpty():
		result = SuccessWithHandEmptied
	default:
		result = Success
	}

	player.Hand.ResetStates()
	player.Hand.Add(g.deck.TakeFromTop(cardsToDraw[result]), FreshlyDrawn)
	player.EndTurn(g.board.Score())

	g.board.AgeCards()
	g.AdvanceTurnToNextPlayer()
	return result
}

// AdvanceTurnToNextPlayer passes control round-robin and starts the next
// player's turn. The current turn must already have ended.
func (g *Game) AdvanceTurnToNextPlayer() {
	if g.CurrentPlayer().IsActive() {
		panic(fmt.Sprintf("%s's turn has not ended", g.CurrentPlayer().Name))
	}
	g.currentIdx = (g.currentIdx + 1) % len(g.players)
	g.StartTurn()
}

// UndoMistakes puts the board, the active player's hand and their turn
// counters back to the last clean checkpoint.
func (g *Game) UndoMistakes() {
	player := g.CurrentPlayer()
	turn := player.Turn()

	g.board = g.snapshot.board
	player.Hand = g.snapshot.hand
	*turn = g.snapshot.turn

	g.snapshot = takeSnapshot(g.board, player)
}

// RollbackMovesToLastCleanState is UndoMistakes.
func (g *Game) RollbackMovesToLastCleanState() {
	g.UndoMistakes()
}
