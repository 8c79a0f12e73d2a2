package main

// GoalKind classifies what happened at the goal line this tick
type GoalKind int

const (
	GoalNone   GoalKind = iota
	GoalScored          // attacker touched it last, score credited
	GoalExit            // ball went in without attacker credit, reset only
)

// GoalOutcome is reported by Step for logging; the state has already been
// updated when it is returned
type GoalOutcome struct {
	Kind   GoalKind
	Scorer Role  // set for GoalScored
	Mouth  Role  // owner of the goal that was entered
	Score  Score // score after the goal
}

func inGoalMouth(y float64) bool {
	return y >= GoalTop && y <= GoalBottom
}

// checkGoal runs the left mouth check, then the right one. A mouth entry
// always resets the round; it only scores if the last touch came from the
// attacking side.
func checkGoal(s *GameState) GoalOutcome {
	outcome := GoalOutcome{}

	if s.Ball.Pos.X <= GoalDepth && inGoalMouth(s.Ball.Pos.Y) {
		outcome = enterGoal(s, RolePlayer1)
	}
	if s.Ball.Pos.X >= FieldWidth-GoalDepth && inGoalMouth(s.Ball.Pos.Y) {
		outcome = enterGoal(s, RolePlayer2)
	}
	return outcome
}

// enterGoal handles the ball entering the goal defended by owner
func enterGoal(s *GameState, owner Role) GoalOutcome {
	attacker := owner.Opponent()
	if s.LastKicker == attacker {
		s.Score.Credit(attacker)
		ResetBall(s, attacker)
		return GoalOutcome{Kind: GoalScored, Scorer: attacker, Mouth: owner, Score: s.Score}
	}
	ResetBall(s, RoleNone)
	return GoalOutcome{Kind: GoalExit, Mouth: owner, Score: s.Score}
}

// ResetBall starts a new round. After a credited goal the ball drifts toward
// the side that conceded.
func ResetBall(s *GameState, scorer Role) {
	s.Ball = Ball{Pos: FieldCenter}
	s.LastKicker = RoleNone
	s.Round++

	if s.Player1 != nil {
		s.Player1.Pos = Player1Spawn
	}
	if s.Player2 != nil {
		s.Player2.Pos = Player2Spawn
	}

	switch scorer {
	case RolePlayer1:
		s.Ball.Vel.X = -ServeSpeed
	case RolePlayer2:
		s.Ball.Vel.X = ServeSpeed
	}
}
