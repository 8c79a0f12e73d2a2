package main

import "log"

// Connect seats a new connection: Player1 if free, then Player2, otherwise
// spectator. The role is sent to the connection before any state frame.
func (g *Game) Connect(connID string, client Broadcaster) Role {
	g.mu.Lock()
	defer g.mu.Unlock()

	role := assignRole(g.state, connID)
	g.clients[connID] = client
	g.roles[connID] = role

	if msg, err := EncodeJSON(MsgRoleAssigned, role.String()); err == nil {
		client.SendRaw(msg)
	}
	log.Printf("connection %s assigned %s", connID, role)
	if g.events != nil {
		g.events.Track(EvtConnect, role, connID, "")
	}
	return role
}

// Disconnect forgets a connection and frees its player slot. Score and ball
// are left alone.
func (g *Game) Disconnect(connID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	role, ok := g.roles[connID]
	if !ok {
		return
	}
	delete(g.roles, connID)
	delete(g.clients, connID)
	releaseRole(g.state, role, connID)

	log.Printf("connection %s (%s) left", connID, role)
	if g.events != nil {
		g.events.Track(EvtDisconnect, role, connID, "")
	}
}

// HandleMove places the connection's avatar at pos. Coordinates are trusted.
func (g *Game) HandleMove(connID string, pos Vec2) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return movePlayer(g.state, g.roles[connID], connID, pos)
}

// HandleKick kicks the ball for the connection's role if it is in reach
func (g *Game) HandleKick(connID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	role := g.roles[connID]
	if !ownsRole(g.state, role, connID) {
		return false
	}
	return applyKick(g.state, role)
}

// ClientCount returns the number of connections watching the game
func (g *Game) ClientCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.clients)
}

func assignRole(s *GameState, connID string) Role {
	for _, r := range []Role{RolePlayer1, RolePlayer2} {
		if s.Player(r) == nil {
			s.setPlayer(r, NewPlayerState(r, connID))
			return r
		}
	}
	return RoleSpectator
}

func releaseRole(s *GameState, r Role, connID string) {
	if ownsRole(s, r, connID) {
		s.setPlayer(r, nil)
	}
}

// ownsRole reports whether connID still holds the avatar for r
func ownsRole(s *GameState, r Role, connID string) bool {
	p := s.Player(r)
	return p != nil && p.ConnID == connID
}

func movePlayer(s *GameState, r Role, connID string, pos Vec2) bool {
	if !ownsRole(s, r, connID) {
		return false
	}
	s.Player(r).Pos = pos
	return true
}
