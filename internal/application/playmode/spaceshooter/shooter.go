// Package spaceshooter is a toy asteroids-style mode: one ship that turns,
// thrusts in short impulses and fires.
package spaceshooter

import (
	"image"
	"image/color"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/playmode"
	"github.com/younwookim/retroshell/internal/ecs"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Key is the registry key of the mode
const Key = "space shooter"

// Label is drawn in the top-left corner of the play area
const Label = "Space Shooter Mode"

var (
	colorShip   = color.RGBA{255, 255, 0, 255}
	colorBullet = color.RGBA{255, 0, 0, 255}
)

// Shooter is the space shooter play mode
type Shooter struct {
	ctx   playmode.Context
	world *ecs.World
}

// New creates the mode. It satisfies playmode.Factory.
func New(ctx playmode.Context) playmode.PlayMode {
	return &Shooter{ctx: ctx}
}

// OnEnter resets the world with the ship in the middle of the area
func (s *Shooter) OnEnter() {
	w, h := float64(s.ctx.Area.Dx()), float64(s.ctx.Area.Dy())
	s.world = ecs.NewWorld(w, h)
	s.world.CreateShip(w/2, h/2)
}

// Resize keeps the ship in the same relative place of the new area
func (s *Shooter) Resize(area image.Rectangle) {
	s.ctx.Area = area
	if s.world != nil {
		s.world.Resize(float64(area.Dx()), float64(area.Dy()))
	}
}

// World exposes the simulation
func (s *Shooter) World() *ecs.World {
	return s.world
}

func (s *Shooter) Update(dt float64) {
	if s.world == nil {
		return
	}
	ecs.Step(s.world, dt)
}

// OnInput maps key presses to intents: A/D toggle rotation, W/S thrust
// and Space fires
func (s *Shooter) OnInput(ev input.Event) bool {
	if s.world == nil || ev.Kind != input.KeyDown {
		return false
	}

	var intent ecs.Intent
	switch ev.Key {
	case input.KeyA:
		intent = ecs.RotateIntent{Turn: ecs.TurnLeft}
	case input.KeyD:
		intent = ecs.RotateIntent{Turn: ecs.TurnRight}
	case input.KeyW:
		intent = ecs.ThrustIntent{}
	case input.KeyS:
		intent = ecs.ThrustIntent{Reverse: true}
	case input.KeySpace:
		intent = ecs.FireIntent{}
	default:
		return false
	}

	if id := ecs.ApplyIntent(s.world, intent); id != 0 {
		event.Publish(s.ctx.Bus, event.ShotFiredEvent, event.ShotFired{Mode: Key})
	}
	return true
}

func (s *Shooter) Draw(dst render.Surface) {
	if s.world == nil {
		return
	}
	ox, oy := float64(s.ctx.Area.Min.X), float64(s.ctx.Area.Min.Y)

	// Ship outline
	poly := ecs.ShipPolygon(s.world)
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		dst.Line(ox+a.X, oy+a.Y, ox+b.X, oy+b.Y, 2, colorShip)
	}

	for id := range s.world.IsBullet {
		p := s.world.Position[id]
		dst.FillCircle(ox+p.X, oy+p.Y, ecs.BulletRadius, colorBullet)
	}

	fontColor := color.Color(color.White)
	if s.ctx.Runtime != nil {
		fontColor = s.ctx.Runtime.Theme().Font
	}
	dst.Text(Label, s.ctx.Area.Min.X+10, s.ctx.Area.Min.Y+10, fontColor)
}
