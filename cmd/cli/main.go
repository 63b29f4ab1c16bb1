package main

import (
	"log"
	"os"

	"github.com/showell/lynrummy/config"
	"github.com/showell/lynrummy/engine"
	"github.com/showell/lynrummy/game"
	"github.com/showell/lynrummy/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()

	g, err := game.New(cfg.GameOpts())
	if err != nil {
		logger.Fatal("could not deal a new game", zap.Error(err))
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		CreatorID: g.CurrentPlayer().ID,
		Game:      g,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("could not start the game engine", zap.Error(err))
	}

	games := store.NewInMemoryGameStore()
	if err := games.AddGame(ge); err != nil {
		logger.Fatal("could not register the game", zap.Error(err))
	}

	logger.Info("game started",
		zap.String("game_id", ge.ID()),
		zap.Strings("players", cfg.Players),
		zap.Int("deck_count", g.Deck().Len()),
	)

	if err := engine.RunCLI(games.FindGame(ge.ID()), os.Stdin, os.Stdout); err != nil {
		logger.Fatal("terminal closed unexpectedly", zap.Error(err))
	}
}
