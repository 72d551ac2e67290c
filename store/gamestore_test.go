package store

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prefsty/game"
)

func testState() game.State {
	return game.NewGame(0, 60, 1, rand.New(rand.NewSource(1)))
}

func TestAddAndFindGame(t *testing.T) {
	s := NewInMemoryGameStore()
	state := testState()

	require.NoError(t, s.AddGame("G1", state))

	loaded, err := s.FindGame("G1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded, "loading must reconstruct the saved state")
}

func TestAddGameRejectsDuplicateID(t *testing.T) {
	s := NewInMemoryGameStore()
	require.NoError(t, s.AddGame("G1", testState()))

	err := s.AddGame("G1", testState())
	assert.ErrorIs(t, err, ErrGameExists)
}

func TestFindGameUnknownID(t *testing.T) {
	s := NewInMemoryGameStore()

	_, err := s.FindGame("nope")
	assert.ErrorIs(t, err, ErrUnknownGameID)
}

func TestSaveGame(t *testing.T) {
	s := NewInMemoryGameStore()
	state := testState()
	require.NoError(t, s.AddGame("G1", state))

	next, err := state.Apply(game.NewAction(0, game.ActionBid), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, s.SaveGame("G1", next))

	loaded, err := s.FindGame("G1")
	require.NoError(t, err)
	assert.Equal(t, next, loaded)
}

func TestSaveGameUnknownID(t *testing.T) {
	s := NewInMemoryGameStore()

	err := s.SaveGame("nope", testState())
	assert.ErrorIs(t, err, ErrUnknownGameID)
}

func TestAddPlayerSeatsInOrder(t *testing.T) {
	s := NewInMemoryGameStore()
	require.NoError(t, s.AddGame("G1", testState()))

	for i, id := range []string{"p0", "p1", "p2"} {
		player, err := s.AddPlayer("G1", id, "player")
		require.NoError(t, err)
		assert.Equal(t, i, player.Seat)
	}

	_, err := s.AddPlayer("G1", "p3", "latecomer")
	assert.ErrorIs(t, err, ErrGameFull)
}

func TestAddPlayerUnknownGame(t *testing.T) {
	s := NewInMemoryGameStore()

	_, err := s.AddPlayer("nope", "p0", "player")
	assert.ErrorIs(t, err, ErrUnknownGameID)
}

func TestFindPlayer(t *testing.T) {
	s := NewInMemoryGameStore()
	require.NoError(t, s.AddGame("G1", testState()))

	added, err := s.AddPlayer("G1", "p0", "Vera")
	require.NoError(t, err)

	found, err := s.FindPlayer("G1", "p0")
	require.NoError(t, err)
	assert.Equal(t, added, found)

	_, err = s.FindPlayer("G1", "p9")
	assert.ErrorIs(t, err, ErrUnknownPlayerID)
}

func TestPlayers(t *testing.T) {
	s := NewInMemoryGameStore()
	require.NoError(t, s.AddGame("G1", testState()))

	_, err := s.Players("nope")
	assert.ErrorIs(t, err, ErrUnknownGameID)

	_, err = s.AddPlayer("G1", "p0", "Vera")
	require.NoError(t, err)
	_, err = s.AddPlayer("G1", "p1", "Milo")
	require.NoError(t, err)

	players, err := s.Players("G1")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Vera", players[0].Name)
	assert.Equal(t, "Milo", players[1].Name)
}
