package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/showell/lynrummy/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrDuplicateGame = errors.New("game already exists")
)

type GameStore interface {
	FindGame(gameID string) *engine.GameEngine
	FindActiveGame(gameID string) *engine.GameEngine
	FindInactiveGame(gameID string) *engine.GameEngine
	AddGame(ge *engine.GameEngine) error
	RemoveGame(gameID string) error
	GameIDs() []string
}

var _ GameStore = (*InMemoryGameStore)(nil)

// InMemoryGameStore maps game id to game engine.
// The map is guarded; the engines themselves are not.
type InMemoryGameStore struct {
	mu    sync.Mutex
	games map[string]*engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(ID string) *engine.GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.games[ID]
}

// FindActiveGame finds a game that has received at least one command
func (s *InMemoryGameStore) FindActiveGame(ID string) *engine.GameEngine {
	game := s.FindGame(ID)
	if game == nil || game.PlayState() == engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) FindInactiveGame(ID string) *engine.GameEngine {
	game := s.FindGame(ID)
	if game == nil || game.PlayState() != engine.Idle {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) AddGame(ge *engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[ge.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGame, ge.ID())
	}
	s.games[ge.ID()] = ge
	return nil
}

func (s *InMemoryGameStore) RemoveGame(ID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[ID]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, ID)
	}
	delete(s.games, ID)
	return nil
}

// GameIDs lists every stored game id in sorted order
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
