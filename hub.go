package main

import "sync"

const (
	maxConnsPerIP = 5
	maxTotalConns = 1000
)

// Hub tracks live connections and hands them to the game
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	game    *Game
	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int
	events     *EventLog
}

// NewHub creates a Hub in front of game; events may be nil
func NewHub(game *Game, events *EventLog) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		game:    game,
		ipConns: make(map[string]int),
		events:  events,
	}
}

func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= maxConnsPerIP {
		return false
	}
	return true
}

func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
}

func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Register seats a client in the game. It runs before the client's pumps
// start, so a client is always seated before it can be unregistered.
func (h *Hub) Register(client *Client) Role {
	h.mu.Lock()
	h.clients[client] = true
	n := len(h.clients)
	h.mu.Unlock()

	if h.events != nil {
		h.events.SetConcurrentPeers(n)
	}
	return h.game.Connect(client.id, client)
}

// Unregister removes a client; safe to call more than once
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	n := len(h.clients)
	h.mu.Unlock()

	h.TrackDisconnect(client.remoteAddr)
	h.game.Disconnect(client.id)
	// a fan-out already in flight may still hold the client; queue drops it
	client.closeSend()
	if h.events != nil {
		h.events.SetConcurrentPeers(n)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}
