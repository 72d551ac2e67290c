package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"prefsty/game"
	"prefsty/protocol"
)

const maxSeats = 3

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrUnknownPlayerID = errors.New("unknown player ID")
	ErrGameExists      = errors.New("game ID already in use")
	ErrGameFull        = errors.New("game already has three players")
)

// GameStore persists game state keyed by game ID and owns the
// player-to-seat mapping. Implementations hold only the serialized
// state; loading reconstructs an identical value.
type GameStore interface {
	AddGame(gameID string, state game.State) error
	FindGame(gameID string) (game.State, error)
	SaveGame(gameID string, state game.State) error
	AddPlayer(gameID, playerID, name string) (protocol.Player, error)
	FindPlayer(gameID, playerID string) (protocol.Player, error)
	Players(gameID string) ([]protocol.Player, error)
}

// InMemoryGameStore maps game ID to the encoded state and the seated
// players
type InMemoryGameStore struct {
	mu      sync.Mutex
	games   map[string][]byte
	players map[string][]protocol.Player
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games:   map[string][]byte{},
		players: map[string][]protocol.Player{},
	}
}

// AddGame stores a new game's state
func (s *InMemoryGameStore) AddGame(gameID string, state game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	bytes, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.games[gameID] = bytes
	return nil
}

// FindGame reconstructs the stored state
func (s *InMemoryGameStore) FindGame(gameID string) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bytes, ok := s.games[gameID]
	if !ok {
		return game.State{}, ErrUnknownGameID
	}

	var state game.State
	if err := json.Unmarshal(bytes, &state); err != nil {
		return game.State{}, err
	}
	return state, nil
}

// SaveGame overwrites the stored state of an existing game
func (s *InMemoryGameStore) SaveGame(gameID string, state game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return ErrUnknownGameID
	}

	bytes, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.games[gameID] = bytes
	return nil
}

// AddPlayer seats a player in the game, assigning the next free seat
// index
func (s *InMemoryGameStore) AddPlayer(gameID, playerID, name string) (protocol.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return protocol.Player{}, ErrUnknownGameID
	}

	seated := s.players[gameID]
	if len(seated) >= maxSeats {
		return protocol.Player{}, ErrGameFull
	}

	player := protocol.Player{PlayerID: playerID, Name: name, Seat: len(seated)}
	s.players[gameID] = append(seated, player)
	return player, nil
}

// FindPlayer looks up a seated player
func (s *InMemoryGameStore) FindPlayer(gameID, playerID string) (protocol.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players[gameID] {
		if p.PlayerID == playerID {
			return p, nil
		}
	}
	return protocol.Player{}, ErrUnknownPlayerID
}

// Players lists the seated players in seat order
func (s *InMemoryGameStore) Players(gameID string) ([]protocol.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return nil, ErrUnknownGameID
	}

	players := make([]protocol.Player, len(s.players[gameID]))
	copy(players, s.players[gameID])
	return players, nil
}
