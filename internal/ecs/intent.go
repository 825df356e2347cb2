package ecs

// Intent represents an action the player wants the ship to perform
type Intent interface {
	isIntent()
}

// RotateIntent toggles rotation in a direction. Asking for the direction
// already active stops the rotation; asking for the other one switches.
type RotateIntent struct {
	Turn Turn
}

func (RotateIntent) isIntent() {}

// ThrustIntent starts a short impulse, forward when Reverse is false
type ThrustIntent struct {
	Reverse bool
}

func (ThrustIntent) isIntent() {}

// FireIntent spawns a bullet in the facing direction
type FireIntent struct{}

func (FireIntent) isIntent() {}
