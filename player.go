package main

// PlayerState is the avatar of a connected player. Clients report absolute
// positions, so there is no velocity.
type PlayerState struct {
	Pos    Vec2
	ConnID string
}

// SpawnPoint returns the start position for a player role
func SpawnPoint(r Role) Vec2 {
	if r == RolePlayer2 {
		return Player2Spawn
	}
	return Player1Spawn
}

// NewPlayerState creates an avatar for r at its spawn point
func NewPlayerState(r Role, connID string) *PlayerState {
	return &PlayerState{
		Pos:    SpawnPoint(r),
		ConnID: connID,
	}
}

// ToState converts to protocol state
func (p *PlayerState) ToState() *PlayerSnapshot {
	return &PlayerSnapshot{
		X:  p.Pos.X,
		Y:  p.Pos.Y,
		ID: p.ConnID,
	}
}
