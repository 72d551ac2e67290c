package protocol

import "prefsty/game"

// Player is a seated member of a game. Seat is the 0..2 index the core
// engine knows the player by.
type Player struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	Seat     int    `json:"seat"`
}

// Message kinds on the websocket
const (
	KindAction = "action"
	KindSync   = "sync"
	KindState  = "state"
	KindError  = "error"
)

// InboundMessage is a message from a player's connection to the game
type InboundMessage struct {
	Kind   string       `json:"kind"`
	Action *game.Action `json:"action,omitempty"`
}

// OutboundMessage is a message from the game to a player's connection
type OutboundMessage struct {
	Kind  string    `json:"kind"`
	State *GameView `json:"state,omitempty"`
	Error string    `json:"error,omitempty"`
}

// NewStateMessage wraps a view for transmission
func NewStateMessage(view GameView) OutboundMessage {
	return OutboundMessage{Kind: KindState, State: &view}
}

// NewErrorMessage wraps a rejection for transmission
func NewErrorMessage(err error) OutboundMessage {
	return OutboundMessage{Kind: KindError, Error: err.Error()}
}
