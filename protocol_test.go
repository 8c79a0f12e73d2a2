package main

import (
	"encoding/json"
	"testing"
)

func TestSnapshotJSONShape(t *testing.T) {
	s := NewGameState()
	s.Player1 = &PlayerState{Pos: Vec2{100, 250}, ConnID: "a"}
	s.Tick = 7

	raw, err := EncodeJSON(MsgGameState, TakeSnapshot(s))
	if err != nil {
		t.Fatal(err)
	}

	var msg struct {
		T string                 `json:"t"`
		D map[string]interface{} `json:"d"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.T != MsgGameState {
		t.Errorf("expected type %s, got %s", MsgGameState, msg.T)
	}

	players := msg.D["players"].(map[string]interface{})
	if _, ok := players["player2"]; ok {
		t.Error("empty slot should be omitted")
	}
	p1 := players["player1"].(map[string]interface{})
	if p1["x"].(float64) != 100 || p1["id"] != "a" {
		t.Errorf("unexpected player1 %v", p1)
	}

	ball := msg.D["ball"].(map[string]interface{})
	for _, k := range []string{"x", "y", "vx", "vy"} {
		if _, ok := ball[k]; !ok {
			t.Errorf("ball missing %s", k)
		}
	}

	kicker, ok := msg.D["lastKicker"]
	if !ok || kicker != nil {
		t.Errorf("lastKicker should be present and null, got %v", kicker)
	}
	if msg.D["tick"].(float64) != 7 {
		t.Errorf("expected tick 7, got %v", msg.D["tick"])
	}
}

func TestSnapshotLastKicker(t *testing.T) {
	s := NewGameState()
	s.LastKicker = RolePlayer2
	snap := TakeSnapshot(s)
	if snap.LastKicker == nil || *snap.LastKicker != "player2" {
		t.Errorf("expected lastKicker player2, got %v", snap.LastKicker)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewGameState()
	s.Player1 = &PlayerState{Pos: Vec2{100, 250}, ConnID: "a"}
	snap := TakeSnapshot(s)

	s.Player1.Pos = Vec2{1, 1}
	s.Ball.Pos = Vec2{2, 2}

	if snap.Players.Player1.X != 100 || snap.Ball.X != FieldCenter.X {
		t.Error("snapshot should not follow later state changes")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	s := NewGameState()
	s.Player2 = &PlayerState{Pos: Vec2{700, 250}, ConnID: "b"}
	s.LastKicker = RolePlayer2
	s.Score = Score{Player1: 1, Player2: 4}

	data, err := EncodeBinary(TakeSnapshot(s))
	if err != nil {
		t.Fatal(err)
	}
	snap, err := DecodeBinary(data)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Players.Player1 != nil || snap.Players.Player2 == nil || snap.Players.Player2.ID != "b" {
		t.Errorf("unexpected players %+v", snap.Players)
	}
	if snap.Score.Player2 != 4 || snap.LastKicker == nil || *snap.LastKicker != "player2" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Vec2
		ok   bool
	}{
		{"valid", `{"x":120.5,"y":-3}`, Vec2{120.5, -3}, true},
		{"zero", `{"x":0,"y":0}`, Vec2{}, true},
		{"missing y", `{"x":1}`, Vec2{}, false},
		{"string x", `{"x":"1","y":2}`, Vec2{}, false},
		{"null", `null`, Vec2{}, false},
		{"empty", ``, Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeMove(json.RawMessage(tt.data))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
