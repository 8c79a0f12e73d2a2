package main

import "time"

// Field geometry. Fixed for the lifetime of the process and shared with
// clients, so changing any of these is a protocol change.
const (
	FieldWidth  = 800.0
	FieldHeight = 500.0
	WallMargin  = 10.0

	GoalTop    = 200.0
	GoalBottom = 300.0
	GoalDepth  = 20.0 // left mouth is x <= GoalDepth, right is x >= FieldWidth-GoalDepth
)

// Ball and contact physics, all in units per tick
const (
	BallFriction    = 0.98
	WallRestitution = 0.8

	ContactRadius   = 25.0 // passive body collision
	ContactMinSpeed = 1.0  // below this the ball gets a fixed nudge
	ContactNudge    = 2.0
	ContactDamping  = 0.8

	KickRadius = 40.0
	KickPower  = 5.0

	ServeSpeed = 2.0
)

// Spawn points, also used on every round reset
var (
	Player1Spawn = Vec2{X: 100, Y: FieldHeight / 2}
	Player2Spawn = Vec2{X: FieldWidth - 100, Y: FieldHeight / 2}
	FieldCenter  = Vec2{X: FieldWidth / 2, Y: FieldHeight / 2}
)

const (
	TickRate     = 60 // simulation ticks (and broadcasts) per second
	TickDuration = time.Second / TickRate
)
