package ecs

import (
	"math"
)

// ApplyIntent applies a player intent to the ship.
// It returns the bullet created by a FireIntent, or 0.
func ApplyIntent(w *World, intent Intent) EntityID {
	id := w.ShipID
	if !w.Exists(id) {
		return 0
	}

	switch in := intent.(type) {
	case RotateIntent:
		heading := w.Heading[id]
		if heading.Turn == in.Turn {
			heading.Turn = TurnNone
		} else {
			heading.Turn = in.Turn
		}
		w.Heading[id] = heading

	case ThrustIntent:
		thruster := w.Thruster[id]
		if in.Reverse {
			thruster.Reverse = ThrustDuration
		} else {
			thruster.Forward = ThrustDuration
		}
		w.Thruster[id] = thruster

	case FireIntent:
		return Fire(w)
	}
	return 0
}

// Fire spawns a bullet from the ship, inheriting the ship's velocity
func Fire(w *World) EntityID {
	id := w.ShipID
	pos := w.Position[id]
	vel := w.Velocity[id]
	dx, dy := Direction(w.Heading[id].Deg)

	return w.CreateBullet(pos.X, pos.Y, Velocity{
		X: BulletSpeed*dx + vel.X,
		Y: BulletSpeed*dy + vel.Y,
	})
}

// Direction returns the unit vector for an angle in degrees.
// Screen y grows downward, so positive angles point up.
func Direction(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return math.Cos(rad), -math.Sin(rad)
}

// UpdateRotation turns rotating ships
func UpdateRotation(w *World, dt float64) {
	for id := range w.IsShip {
		heading := w.Heading[id]
		heading.Deg += float64(heading.Turn) * RotationSpeed * dt
		w.Heading[id] = heading
	}
}

// UpdateThrust accelerates ships while an impulse timer is running
func UpdateThrust(w *World, dt float64) {
	for id := range w.IsShip {
		thruster := w.Thruster[id]
		vel := w.Velocity[id]
		dx, dy := Direction(w.Heading[id].Deg)

		if thruster.Forward > 0 {
			vel.X += dx * ThrustAccel * dt
			vel.Y += dy * ThrustAccel * dt
			thruster.Forward -= dt
		}
		if thruster.Reverse > 0 {
			vel.X -= dx * ThrustAccel * dt
			vel.Y -= dy * ThrustAccel * dt
			thruster.Reverse -= dt
		}

		w.Velocity[id] = vel
		w.Thruster[id] = thruster
	}
}

// UpdateShipMovement applies friction, moves ships and wraps them around
// the play area edges
func UpdateShipMovement(w *World, dt float64) {
	for id := range w.IsShip {
		vel := w.Velocity[id]
		vel.X *= Friction
		vel.Y *= Friction

		pos := w.Position[id]
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		// Wrap
		if pos.X > w.Width {
			pos.X = 0
		} else if pos.X < 0 {
			pos.X = w.Width
		}
		if pos.Y > w.Height {
			pos.Y = 0
		} else if pos.Y < 0 {
			pos.Y = w.Height
		}

		w.Velocity[id] = vel
		w.Position[id] = pos
	}
}

// UpdateBullets moves bullets and destroys those that left the play area
func UpdateBullets(w *World, dt float64) {
	toDestroy := make([]EntityID, 0)

	for id := range w.IsBullet {
		pos := w.Position[id]
		vel := w.Velocity[id]
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		w.Position[id] = pos

		if pos.X < 0 || pos.X > w.Width || pos.Y < 0 || pos.Y > w.Height {
			toDestroy = append(toDestroy, id)
		}
	}

	for _, id := range toDestroy {
		w.DestroyEntity(id)
	}
}

// Step runs every system once, in order
func Step(w *World, dt float64) {
	UpdateRotation(w, dt)
	UpdateThrust(w, dt)
	UpdateShipMovement(w, dt)
	UpdateBullets(w, dt)
}

// ShipPolygon returns the three corners of the ship triangle, tip first
func ShipPolygon(w *World) [3]Position {
	pos := w.Position[w.ShipID]
	dx, dy := Direction(w.Heading[w.ShipID].Deg)
	// perpendicular
	px, py := -dy, dx

	tip := Position{X: pos.X + dx*ShipLength/2, Y: pos.Y + dy*ShipLength/2}
	backX := pos.X - dx*ShipLength/2
	backY := pos.Y - dy*ShipLength/2
	return [3]Position{
		tip,
		{X: backX + px*ShipWidth/2, Y: backY + py*ShipWidth/2},
		{X: backX - px*ShipWidth/2, Y: backY - py*ShipWidth/2},
	}
}
