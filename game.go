package main

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Codec selects how a client receives state frames. Control messages are
// always JSON text.
type Codec int

const (
	CodecJSON Codec = iota
	CodecMsgpack
)

// Broadcaster interface for sending messages to clients. Sends must never
// block the game loop.
type Broadcaster interface {
	SendRaw(data []byte)
	SendBinary(data []byte)
	Codec() Codec
}

// EventTracker receives notable game events for the event log
type EventTracker interface {
	Track(evtType string, role Role, connID string, data string)
}

// Game owns the authoritative state and every connection watching it. All
// state access, from the ticker and from input handlers alike, holds mu.
type Game struct {
	mu      sync.Mutex
	state   *GameState
	clients map[string]Broadcaster // connID -> client
	roles   map[string]Role        // connID -> role
	events  EventTracker
	running bool
	stopped bool
	stop    chan struct{}
}

// NewGame creates a Game; events may be nil
func NewGame(events EventTracker) *Game {
	return &Game{
		state:   NewGameState(),
		clients: make(map[string]Broadcaster),
		roles:   make(map[string]Role),
		events:  events,
		stop:    make(chan struct{}),
	}
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	if g.running || g.stopped {
		g.mu.Unlock()
		return
	}
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.stopped {
		g.stopped = true
		g.running = false
		close(g.stop)
	}
}

// update runs one game tick: step, copy, then fan out outside the lock
func (g *Game) update() {
	g.mu.Lock()
	outcome := Step(g.state)
	snap := TakeSnapshot(g.state)
	clients := make([]Broadcaster, 0, len(g.clients))
	for _, c := range g.clients {
		clients = append(clients, c)
	}
	g.mu.Unlock()

	if outcome.Kind != GoalNone {
		g.recordGoal(outcome, snap.Tick)
	}
	g.broadcastState(snap, clients)
}

// broadcastState encodes the snapshot at most once per codec
func (g *Game) broadcastState(snap Snapshot, clients []Broadcaster) {
	var text, binary []byte
	for _, c := range clients {
		switch c.Codec() {
		case CodecMsgpack:
			if binary == nil {
				data, err := EncodeBinary(snap)
				if err != nil {
					log.Printf("msgpack encode error: %v", err)
					continue
				}
				binary = data
			}
			c.SendBinary(binary)
		default:
			if text == nil {
				data, err := EncodeJSON(MsgGameState, snap)
				if err != nil {
					log.Printf("marshal error: %v", err)
					continue
				}
				text = data
			}
			c.SendRaw(text)
		}
	}
}

type goalEventData struct {
	Mouth   string `json:"mouth"`
	Player1 int    `json:"p1"`
	Player2 int    `json:"p2"`
	Tick    uint64 `json:"tick"`
}

func (g *Game) recordGoal(o GoalOutcome, tick uint64) {
	evt := EvtExit
	if o.Kind == GoalScored {
		evt = EvtGoal
		log.Printf("goal for %s, score %d:%d", o.Scorer, o.Score.Player1, o.Score.Player2)
	}
	if g.events == nil {
		return
	}
	data, err := json.Marshal(goalEventData{
		Mouth:   o.Mouth.String(),
		Player1: o.Score.Player1,
		Player2: o.Score.Player2,
		Tick:    tick,
	})
	if err != nil {
		return
	}
	g.events.Track(evt, o.Scorer, "", string(data))
}

// GameStats is a point-in-time summary for the stats endpoint
type GameStats struct {
	Score      ScoreSnapshot `json:"score"`
	Tick       uint64        `json:"tick"`
	Round      int           `json:"round"`
	Players    int           `json:"players"`
	Spectators int           `json:"spectators"`
}

// Stats returns a summary of the live game
func (g *Game) Stats() GameStats {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := GameStats{
		Score: ScoreSnapshot{Player1: g.state.Score.Player1, Player2: g.state.Score.Player2},
		Tick:  g.state.Tick,
		Round: g.state.Round,
	}
	for _, r := range g.roles {
		if r.IsPlayer() {
			st.Players++
		} else {
			st.Spectators++
		}
	}
	return st
}

// Snapshot returns the current state in wire form
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return TakeSnapshot(g.state)
}
