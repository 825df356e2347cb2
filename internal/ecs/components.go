package ecs

// Position is a point in play-area pixels
type Position struct {
	X, Y float64
}

// Velocity in pixels per second
type Velocity struct {
	X, Y float64
}

// Turn is the direction a ship is rotating in
type Turn int

const (
	TurnNone  Turn = 0
	TurnLeft  Turn = 1 // counter-clockwise, angle increases
	TurnRight Turn = -1
)

// Heading is the facing angle in degrees, 0 pointing right and 90 up
type Heading struct {
	Deg  float64
	Turn Turn
}

// Thruster holds the remaining time of the forward and reverse impulses
type Thruster struct {
	Forward float64 // seconds left
	Reverse float64 // seconds left
}

// Tuning of the space shooter
const (
	RotationSpeed  = 120.0 // degrees per second
	ThrustAccel    = 200.0 // px/sec^2
	ThrustDuration = 0.5   // seconds per impulse
	Friction       = 0.995 // velocity multiplier per update
	BulletSpeed    = 300.0 // px/sec
	BulletRadius   = 5.0
	ShipLength     = 40.0
	ShipWidth      = 30.0
)
