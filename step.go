package main

// Step advances the simulation by one tick. The order is fixed: integrate,
// friction, walls, goals, then player contact.
func Step(s *GameState) GoalOutcome {
	s.Tick++

	moveBall(&s.Ball)
	bounceWalls(&s.Ball)

	outcome := checkGoal(s)

	for _, r := range s.occupied() {
		if s.hasKicked(r) {
			continue
		}
		resolveCollision(s, r)
	}
	s.kicked = 0

	return outcome
}

// moveBall integrates position with the velocity from the previous tick,
// then decays the velocity
func moveBall(b *Ball) {
	b.Pos = b.Pos.Add(b.Vel)
	b.Vel = b.Vel.Scale(BallFriction)
}

// bounceWalls reflects and clamps each axis independently
func bounceWalls(b *Ball) {
	b.Pos.X, b.Vel.X = bounceAxis(b.Pos.X, b.Vel.X, FieldWidth)
	b.Pos.Y, b.Vel.Y = bounceAxis(b.Pos.Y, b.Vel.Y, FieldHeight)
}

func bounceAxis(pos, vel, size float64) (float64, float64) {
	switch {
	case pos <= WallMargin:
		return WallMargin, -vel * WallRestitution
	case pos >= size-WallMargin:
		return size - WallMargin, -vel * WallRestitution
	}
	return pos, vel
}
