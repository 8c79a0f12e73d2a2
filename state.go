package main

// Role is what a connection controls. The zero value doubles as "nobody"
// for LastKicker.
type Role uint8

const (
	RoleNone Role = iota
	RolePlayer1
	RolePlayer2
	RoleSpectator
)

func (r Role) String() string {
	switch r {
	case RolePlayer1:
		return "player1"
	case RolePlayer2:
		return "player2"
	case RoleSpectator:
		return "spectator"
	default:
		return "none"
	}
}

// IsPlayer reports whether r owns an avatar
func (r Role) IsPlayer() bool {
	return r == RolePlayer1 || r == RolePlayer2
}

// Opponent returns the other player role
func (r Role) Opponent() Role {
	switch r {
	case RolePlayer1:
		return RolePlayer2
	case RolePlayer2:
		return RolePlayer1
	}
	return RoleNone
}

// Ball is the shared ball
type Ball struct {
	Pos Vec2
	Vel Vec2
}

// Score holds one counter per player role. Counters only go up.
type Score struct {
	Player1 int
	Player2 int
}

// Credit adds a goal for r
func (sc *Score) Credit(r Role) {
	switch r {
	case RolePlayer1:
		sc.Player1++
	case RolePlayer2:
		sc.Player2++
	}
}

// GameState is the authoritative simulation state. It is owned by a Game
// and every access goes through the Game's mutex.
type GameState struct {
	Ball       Ball
	Player1    *PlayerState
	Player2    *PlayerState
	Score      Score
	LastKicker Role
	Tick       uint64
	Round      int // incremented on every reset

	kicked uint8 // bit per player role that kicked since the last step
}

// NewGameState returns a state with the ball at rest in the centre and no players
func NewGameState() *GameState {
	return &GameState{
		Ball: Ball{Pos: FieldCenter},
	}
}

// Player returns the avatar for r, or nil if the slot is empty
func (s *GameState) Player(r Role) *PlayerState {
	switch r {
	case RolePlayer1:
		return s.Player1
	case RolePlayer2:
		return s.Player2
	}
	return nil
}

func (s *GameState) setPlayer(r Role, p *PlayerState) {
	switch r {
	case RolePlayer1:
		s.Player1 = p
	case RolePlayer2:
		s.Player2 = p
	}
}

// markKicked exempts r from passive contact during the next step
func (s *GameState) markKicked(r Role) {
	s.kicked |= 1 << r
}

func (s *GameState) hasKicked(r Role) bool {
	return s.kicked&(1<<r) != 0
}

// occupied returns the player roles that currently have an avatar, Player1 first
func (s *GameState) occupied() []Role {
	roles := make([]Role, 0, 2)
	if s.Player1 != nil {
		roles = append(roles, RolePlayer1)
	}
	if s.Player2 != nil {
		roles = append(roles, RolePlayer2)
	}
	return roles
}
