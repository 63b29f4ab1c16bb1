package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
)

var seats = map[string]int{"Steve": 0, "Susan": 1}

type turnTestContext struct {
	fixture fixture
	game    *Game
	result  CompleteTurnResult
}

func (c *turnTestContext) reset() {
	c.fixture = fixture{hands: []string{"", ""}}
	c.game = nil
	c.result = Failure
}

// the game is built from the Given steps on first use
func (c *turnTestContext) current() *Game {
	if c.game == nil {
		c.game = c.fixture.build()
	}
	return c.game
}

func (c *turnTestContext) shelfHolds(shelfIndex int, labels string) error {
	for len(c.fixture.shelves) <= shelfIndex {
		c.fixture.shelves = append(c.fixture.shelves, "")
	}
	c.fixture.shelves[shelfIndex] = labels
	return nil
}

func (c *turnTestContext) playerHolds(name, labels string) error {
	c.fixture.hands[seats[name]] = labels
	return nil
}

func (c *turnTestContext) theDeckHolds(labels string) error {
	c.fixture.deck = labels
	return nil
}

func (c *turnTestContext) aVictorHasAlreadyBeenCrowned() error {
	c.fixture.hasVictor = true
	return nil
}

func (c *turnTestContext) playsOntoStack(label string, stackIndex, shelfIndex int) error {
	if !c.current().PlayCardOnStack(card(label), at(shelfIndex, stackIndex)) {
		return fmt.Errorf("%s does not fit on stack %d of shelf %d", label, stackIndex, shelfIndex)
	}
	return nil
}

func (c *turnTestContext) dropsOnShelf(label string, shelfIndex int) error {
	c.current().PlayCardOnShelf(card(label), shelfIndex)
	return nil
}

func (c *turnTestContext) undoesTheirMistakes() error {
	c.current().UndoMistakes()
	return nil
}

func (c *turnTestContext) completesTheTurn() error {
	c.result = c.current().CompleteTurn()
	return nil
}

func (c *turnTestContext) theTurnResultIs(want string) error {
	if c.result.String() != want {
		return fmt.Errorf("expected turn result %q, got %q", want, c.result)
	}
	return nil
}

func (c *turnTestContext) itIsPlayersTurn(name string) error {
	if got := c.current().CurrentPlayer().Name; got != name {
		return fmt.Errorf("expected it to be %s's turn, got %s", name, got)
	}
	return nil
}

func (c *turnTestContext) playerHasTotalScore(name string, score int) error {
	player := c.current().Players()[seats[name]]
	if player.TotalScore != score {
		return fmt.Errorf("expected %s to have %d points, got %d", name, score, player.TotalScore)
	}
	return nil
}

func (c *turnTestContext) playerHoldsCount(name string, count int) error {
	player := c.current().Players()[seats[name]]
	if player.Hand.Len() != count {
		return fmt.Errorf("expected %s to hold %d cards, got %d (%s)", name, count, player.Hand.Len(), player.Hand)
	}
	return nil
}

func (c *turnTestContext) theTurnScoreIs(score int) error {
	if got := c.current().GetTurnScore(); got != score {
		return fmt.Errorf("expected turn score %d, got %d", score, got)
	}
	return nil
}

func (c *turnTestContext) theBoardIs(cleanliness string) error {
	b := c.current().Board()
	if b.IsClean() != (cleanliness == "clean") {
		return errors.New("expected the board to be " + cleanliness + ":\n" + b.String())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &turnTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^shelf (\d+) holds "([^"]*)"$`, tc.shelfHolds)
	ctx.Step(`^(Steve|Susan) holds "([^"]*)"$`, tc.playerHolds)
	ctx.Step(`^the deck holds "([^"]*)"$`, tc.theDeckHolds)
	ctx.Step(`^a victor has already been crowned$`, tc.aVictorHasAlreadyBeenCrowned)

	// When steps
	ctx.Step(`^the current player plays "([^"]*)" onto stack (\d+) of shelf (\d+)$`, tc.playsOntoStack)
	ctx.Step(`^the current player drops "([^"]*)" on shelf (\d+)$`, tc.dropsOnShelf)
	ctx.Step(`^the current player undoes their mistakes$`, tc.undoesTheirMistakes)
	ctx.Step(`^the current player completes the turn$`, tc.completesTheTurn)

	// Then steps
	ctx.Step(`^the turn result is "([^"]*)"$`, tc.theTurnResultIs)
	ctx.Step(`^it is (Steve|Susan)'s turn$`, tc.itIsPlayersTurn)
	ctx.Step(`^(Steve|Susan) has a total score of (\d+)$`, tc.playerHasTotalScore)
	ctx.Step(`^(Steve|Susan) holds (\d+) cards$`, tc.playerHoldsCount)
	ctx.Step(`^the turn score is (\d+)$`, tc.theTurnScoreIs)
	ctx.Step(`^the board is (clean|dirty)$`, tc.theBoardIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/turn.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
