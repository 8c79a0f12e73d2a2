package main

import "testing"

func stateWithPlayers() *GameState {
	s := NewGameState()
	s.Player1 = &PlayerState{Pos: Vec2{300, 50}, ConnID: "a"}
	s.Player2 = &PlayerState{Pos: Vec2{500, 450}, ConnID: "b"}
	return s
}

func TestGoalAttribution(t *testing.T) {
	tests := []struct {
		name       string
		ball       Vec2
		lastKicker Role
		wantKind   GoalKind
		wantScore  Score
		wantServe  Vec2
	}{
		{"left mouth by player2", Vec2{15, 250}, RolePlayer2, GoalScored, Score{0, 1}, Vec2{ServeSpeed, 0}},
		{"left mouth own touch", Vec2{15, 250}, RolePlayer1, GoalExit, Score{}, Vec2{}},
		{"left mouth untouched", Vec2{15, 250}, RoleNone, GoalExit, Score{}, Vec2{}},
		{"right mouth by player1", Vec2{785, 250}, RolePlayer1, GoalScored, Score{1, 0}, Vec2{-ServeSpeed, 0}},
		{"right mouth own touch", Vec2{785, 250}, RolePlayer2, GoalExit, Score{}, Vec2{}},
		{"left mouth top edge", Vec2{20, 200}, RolePlayer2, GoalScored, Score{0, 1}, Vec2{ServeSpeed, 0}},
		{"right mouth bottom edge", Vec2{780, 300}, RolePlayer1, GoalScored, Score{1, 0}, Vec2{-ServeSpeed, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWithPlayers()
			s.Ball = Ball{Pos: tt.ball}
			s.LastKicker = tt.lastKicker

			out := Step(s)

			if out.Kind != tt.wantKind {
				t.Errorf("outcome = %v, want %v", out.Kind, tt.wantKind)
			}
			if s.Score != tt.wantScore {
				t.Errorf("score = %+v, want %+v", s.Score, tt.wantScore)
			}
			if s.Ball.Pos != FieldCenter {
				t.Errorf("ball should be at centre, got %v", s.Ball.Pos)
			}
			if s.Ball.Vel != tt.wantServe {
				t.Errorf("serve velocity = %v, want %v", s.Ball.Vel, tt.wantServe)
			}
			if s.LastKicker != RoleNone {
				t.Errorf("last kicker should be cleared, got %s", s.LastKicker)
			}
			if s.Player1.Pos != Player1Spawn || s.Player2.Pos != Player2Spawn {
				t.Errorf("players should be back at spawn, got %v and %v", s.Player1.Pos, s.Player2.Pos)
			}
			if s.Round != 1 {
				t.Errorf("expected round 1, got %d", s.Round)
			}
		})
	}
}

func TestNoGoalOutsideMouth(t *testing.T) {
	for _, pos := range []Vec2{{15, 150}, {15, 350}, {785, 199}, {785, 301}, {25, 250}} {
		s := NewGameState()
		s.Ball = Ball{Pos: pos}
		s.LastKicker = RolePlayer1

		if out := Step(s); out.Kind != GoalNone {
			t.Errorf("ball at %v should not count as a goal", pos)
		}
		if s.Ball.Pos != pos {
			t.Errorf("ball at %v should not have moved, got %v", pos, s.Ball.Pos)
		}
	}
}

func TestGoalOutcomeReportsScorer(t *testing.T) {
	s := NewGameState()
	s.Ball = Ball{Pos: Vec2{785, 250}}
	s.LastKicker = RolePlayer1

	out := Step(s)
	if out.Scorer != RolePlayer1 || out.Mouth != RolePlayer2 {
		t.Errorf("unexpected outcome %+v", out)
	}
	if out.Score.Player1 != 1 {
		t.Errorf("outcome should carry the new score, got %+v", out.Score)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	s := NewGameState()
	for i := 0; i < 3; i++ {
		s.Ball = Ball{Pos: Vec2{15, 250}}
		s.LastKicker = RolePlayer2
		Step(s)
		s.Ball = Ball{Pos: Vec2{15, 250}}
		Step(s) // unattributed exit
	}
	if s.Score.Player2 != 3 || s.Score.Player1 != 0 {
		t.Errorf("expected 0:3, got %+v", s.Score)
	}
	if s.Round != 6 {
		t.Errorf("expected 6 resets, got %d", s.Round)
	}
}

func TestResetBallEmptySlots(t *testing.T) {
	s := NewGameState()
	s.Player2 = &PlayerState{Pos: Vec2{10, 10}, ConnID: "b"}
	s.Ball = Ball{Pos: Vec2{50, 60}, Vel: Vec2{3, 3}}
	s.LastKicker = RolePlayer2

	ResetBall(s, RoleNone)

	if s.Player1 != nil {
		t.Error("reset must not create a player")
	}
	if s.Player2.Pos != Player2Spawn {
		t.Errorf("player2 should be at spawn, got %v", s.Player2.Pos)
	}
	if s.Ball.Vel != (Vec2{}) {
		t.Errorf("no serve after an unattributed exit, got %v", s.Ball.Vel)
	}
}
