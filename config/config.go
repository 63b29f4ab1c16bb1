package config

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/showell/lynrummy/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is read from LYNRUMMY_* environment variables. List values are
// separated by semicolons, so LYNRUMMY_SHELVES="2H,3H,4H;7S,7D,7C" is two
// shelves holding one stack each.
type Config struct {
	Players  []string `env:"LYNRUMMY_PLAYERS,default=Steve;Susan"`
	DealSize int      `env:"LYNRUMMY_DEAL_SIZE,default=15"`
	// stack shorthand uses commas, which envdecode defaults cannot hold,
	// so an empty list means the standard opening board
	InitialShelves []string `env:"LYNRUMMY_SHELVES"`
	ExtraShelves   int      `env:"LYNRUMMY_EXTRA_SHELVES,default=3"`
	// Seed 0 shuffles from the clock
	Seed        int64  `env:"LYNRUMMY_SEED,default=0"`
	LogLevel    string `env:"LYNRUMMY_LOG_LEVEL,default=info"`
	Development bool   `env:"LYNRUMMY_DEV_LOGGING,default=false"`
}

// Load decodes and validates the environment
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	cfg.Players = trimAll(cfg.Players)
	cfg.InitialShelves = trimAll(cfg.InitialShelves)
	if len(cfg.InitialShelves) == 0 {
		cfg.InitialShelves = game.DefaultInitialShelves
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func trimAll(values []string) []string {
	trimmed := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return trimmed
}

// Validate checks the values decoding cannot
func (c Config) Validate() error {
	if len(c.Players) < 2 {
		return fmt.Errorf("%w: at least 2 players required, got %d", ErrInvalidConfig, len(c.Players))
	}
	if c.DealSize <= 0 {
		return fmt.Errorf("%w: deal size must be positive, got %d", ErrInvalidConfig, c.DealSize)
	}
	if c.ExtraShelves < 0 {
		return fmt.Errorf("%w: extra shelves cannot be negative, got %d", ErrInvalidConfig, c.ExtraShelves)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

// GameOpts converts the config into options for a new game
func (c Config) GameOpts() game.GameOpts {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.GameOpts{
		PlayerNames:    c.Players,
		InitialShelves: c.InitialShelves,
		ExtraShelves:   c.ExtraShelves,
		DealSize:       c.DealSize,
		Rand:           rand.New(rand.NewSource(seed)),
	}
}

// Logger builds a zap logger at the configured level, writing to stderr
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
