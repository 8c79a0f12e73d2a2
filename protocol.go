package main

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Client -> Server message types
const (
	MsgPlayerMove = "playerMove"
	MsgKickBall   = "kickBall"
)

// Server -> Client message types
const (
	MsgRoleAssigned = "roleAssigned"
	MsgGameState    = "gameState"
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// MoveMsg is the absolute avatar position reported by a client
type MoveMsg struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// PlayerSnapshot is broadcast per occupied player slot
type PlayerSnapshot struct {
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
	ID string  `json:"id" msgpack:"id"`
}

// PlayersSnapshot has a key only for occupied slots
type PlayersSnapshot struct {
	Player1 *PlayerSnapshot `json:"player1,omitempty" msgpack:"player1,omitempty"`
	Player2 *PlayerSnapshot `json:"player2,omitempty" msgpack:"player2,omitempty"`
}

// BallSnapshot is the ball position and velocity
type BallSnapshot struct {
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
	VX float64 `json:"vx" msgpack:"vx"`
	VY float64 `json:"vy" msgpack:"vy"`
}

// ScoreSnapshot is the running score
type ScoreSnapshot struct {
	Player1 int `json:"player1" msgpack:"player1"`
	Player2 int `json:"player2" msgpack:"player2"`
}

// Snapshot is the full state broadcast. It is a copy; nothing in it points
// back into the live GameState.
type Snapshot struct {
	Players    PlayersSnapshot `json:"players" msgpack:"players"`
	Ball       BallSnapshot    `json:"ball" msgpack:"ball"`
	Score      ScoreSnapshot   `json:"score" msgpack:"score"`
	LastKicker *string         `json:"lastKicker" msgpack:"lastKicker"`
	Tick       uint64          `json:"tick" msgpack:"tick"`
}

// TakeSnapshot copies s into its wire form
func TakeSnapshot(s *GameState) Snapshot {
	snap := Snapshot{
		Ball: BallSnapshot{
			X:  s.Ball.Pos.X,
			Y:  s.Ball.Pos.Y,
			VX: s.Ball.Vel.X,
			VY: s.Ball.Vel.Y,
		},
		Score: ScoreSnapshot{Player1: s.Score.Player1, Player2: s.Score.Player2},
		Tick:  s.Tick,
	}
	if s.Player1 != nil {
		snap.Players.Player1 = s.Player1.ToState()
	}
	if s.Player2 != nil {
		snap.Players.Player2 = s.Player2.ToState()
	}
	if s.LastKicker.IsPlayer() {
		name := s.LastKicker.String()
		snap.LastKicker = &name
	}
	return snap
}

// EncodeJSON marshals a typed text message
func EncodeJSON(t string, data interface{}) ([]byte, error) {
	return json.Marshal(Envelope{T: t, Data: data})
}

// EncodeBinary marshals a snapshot for binary-codec clients
func EncodeBinary(snap Snapshot) ([]byte, error) {
	return msgpack.Marshal(&snap)
}

// DecodeBinary is the inverse of EncodeBinary
func DecodeBinary(data []byte) (Snapshot, error) {
	var snap Snapshot
	err := msgpack.Unmarshal(data, &snap)
	return snap, err
}
