package main

// resolveCollision pushes the ball away from an overlapping player. A ball
// that is nearly at rest gets a fixed nudge; a moving ball keeps 80% of its
// speed along the new direction. Runs on every tick of overlap.
func resolveCollision(s *GameState, r Role) bool {
	p := s.Player(r)
	if p == nil {
		return false
	}
	if Distance(p.Pos, s.Ball.Pos) >= ContactRadius {
		return false
	}

	angle := AngleTo(p.Pos, s.Ball.Pos)
	speed := Magnitude(s.Ball.Vel)
	if speed < ContactMinSpeed {
		s.Ball.Vel = Heading(angle, ContactNudge)
	} else {
		s.Ball.Vel = Heading(angle, speed*ContactDamping)
	}
	s.LastKicker = r
	return true
}

// applyKick launches the ball away from the player at full kick power if it
// is within reach. Every player that kicked skips passive contact on the
// next step.
func applyKick(s *GameState, r Role) bool {
	p := s.Player(r)
	if p == nil {
		return false
	}
	if Distance(p.Pos, s.Ball.Pos) >= KickRadius {
		return false
	}

	s.Ball.Vel = Heading(AngleTo(p.Pos, s.Ball.Pos), KickPower)
	s.LastKicker = r
	s.markKicked(r)
	return true
}
