package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"prefsty/game"
	"prefsty/protocol"
)

// room is the live side of one game: the connected clients and the
// lock that keeps Apply calls for this game strictly one at a time.
// The engine itself is synchronous; serialization lives here.
type room struct {
	mu      sync.Mutex
	rng     *rand.Rand
	clients map[string]*client
}

func newRoom() *room {
	return &room{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		clients: map[string]*client{},
	}
}

func (r *room) add(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.playerID] = c
}

func (r *room) remove(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c.playerID)
}

// roomSet tracks live rooms by game ID
type roomSet struct {
	mu    sync.Mutex
	rooms map[string]*room
}

func newRoomSet() *roomSet {
	return &roomSet{rooms: map[string]*room{}}
}

func (s *roomSet) create(gameID string) *room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.rooms[gameID]; ok {
		return r
	}
	r := newRoom()
	s.rooms[gameID] = r
	return r
}

func (s *roomSet) find(gameID string) *room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[gameID]
}

// client is one seated websocket connection. Writes go through the
// send channel; writePump owns the connection's write side. The closed
// flag guards the channel: a fan-out may still hold a reference to a
// client whose reader has already cleaned up, and sending to it must
// be a no-op, never a panic.
type client struct {
	playerID string
	seat     int
	conn     *websocket.Conn

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newClient(playerID string, seat int, conn *websocket.Conn) *client {
	return &client{
		playerID: playerID,
		seat:     seat,
		conn:     conn,
		send:     make(chan []byte, 16),
	}
}

func (c *client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	c.conn.Close()
}

// close shuts the send channel down exactly once; later sendMessage
// calls drop their message
func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *client) sendMessage(msg protocol.OutboundMessage) {
	bytes, err := json.Marshal(msg)
	if err != nil {
		log.Println(err.Error())
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- bytes:
	default:
		// slow consumer; drop rather than stall the room
	}
}

func (c *client) sendView(state game.State) {
	c.sendMessage(protocol.NewStateMessage(protocol.NewGameView(state, c.seat)))
}

// readPump consumes a client's messages until the connection drops
func (g *GameServer) readPump(gameID string, r *room, c *client) {
	defer func() {
		r.remove(c)
		c.close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendMessage(protocol.NewErrorMessage(err))
			continue
		}

		switch msg.Kind {
		case protocol.KindSync:
			if state, err := g.store.FindGame(gameID); err == nil {
				c.sendView(state)
			}
		case protocol.KindAction:
			if msg.Action == nil {
				c.sendMessage(protocol.NewErrorMessage(game.ErrInvalidAction))
				continue
			}
			g.applyAction(gameID, r, c, *msg.Action)
		default:
			c.sendMessage(protocol.NewErrorMessage(game.ErrInvalidAction))
		}
	}
}

// applyAction runs one engine step under the room lock: load, apply,
// persist, then fan the new view out to every connected seat. The
// fan-out stays under the lock so views enter every send queue in
// apply order; sends never block, so no slow consumer can stall the
// room.
func (g *GameServer) applyAction(gameID string, r *room, c *client, action game.Action) {
	// the seat comes from the session, never from the client payload
	action.Player = c.seat

	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := g.store.FindGame(gameID)
	if err != nil {
		c.sendMessage(protocol.NewErrorMessage(err))
		return
	}

	next, err := state.Apply(action, r.rng)
	if err != nil {
		c.sendMessage(protocol.NewErrorMessage(err))
		return
	}

	if err := g.store.SaveGame(gameID, next); err != nil {
		log.Println(err.Error())
		c.sendMessage(protocol.NewErrorMessage(err))
		return
	}

	for _, other := range r.clients {
		other.sendView(next)
	}
}
