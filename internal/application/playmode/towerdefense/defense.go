// Package towerdefense is a toy tower defense mode on a donburi world:
// creeps walk a horizontal lane and towers placed with the cursor shoot them.
package towerdefense

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/playmode"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Key is the registry key of the mode
const Key = "tower defense"

// Label is drawn in the top-left corner of the play area
const Label = "Tower Defense Mode"

var (
	creeps = donburi.NewQuery(filter.Contains(Creep))
	towers = donburi.NewQuery(filter.Contains(Tower))
)

var (
	colorLane   = color.RGBA{60, 60, 60, 255}
	colorCreep  = color.RGBA{220, 40, 40, 255}
	colorTower  = color.RGBA{40, 160, 220, 255}
	colorTracer = color.RGBA{255, 255, 160, 255}
)

// Defense is the tower defense play mode
type Defense struct {
	ctx    playmode.Context
	world  donburi.World

	width, height float64
	laneY         float64
	spawnTimer    float64
	cursorCol     int
	cursorRow     int
	lives         int
	kills         int
}

// New creates the mode. It satisfies playmode.Factory.
func New(ctx playmode.Context) playmode.PlayMode {
	return &Defense{ctx: ctx}
}

// OnEnter resets the board
func (d *Defense) OnEnter() {
	d.world = donburi.NewWorld()
	d.width = float64(d.ctx.Area.Dx())
	d.height = float64(d.ctx.Area.Dy())
	d.laneY = d.height / 2
	d.spawnTimer = 0
	d.cursorCol = d.cols() / 2
	d.cursorRow = max(0, d.rows()/2-2)
	d.lives = StartLives
	d.kills = 0
}

// Resize moves the lane to the middle of the new area. Creeps stay at the
// same relative distance along it, and towers that no longer fit or now
// sit on the lane are removed.
func (d *Defense) Resize(area image.Rectangle) {
	d.ctx.Area = area
	if d.world == nil {
		return
	}

	sx := 1.0
	if d.width > 0 {
		sx = float64(area.Dx()) / d.width
	}
	d.width = float64(area.Dx())
	d.height = float64(area.Dy())
	d.laneY = d.height / 2

	creeps.Each(d.world, func(entry *donburi.Entry) {
		c := Creep.Get(entry)
		c.X *= sx
		c.Y = d.laneY
	})

	var lost []donburi.Entity
	towers.Each(d.world, func(entry *donburi.Entry) {
		t := Tower.Get(entry)
		if t.X >= d.width || t.Y >= d.height || math.Abs(t.Y-d.laneY) < CellSize {
			lost = append(lost, entry.Entity())
		}
	})
	for _, e := range lost {
		d.world.Remove(e)
	}

	d.cursorCol = min(d.cols()-1, d.cursorCol)
	d.cursorRow = min(d.rows()-1, d.cursorRow)
}

func (d *Defense) cols() int { return max(1, int(d.width)/CellSize) }
func (d *Defense) rows() int { return max(1, int(d.height)/CellSize) }

func (d *Defense) Lives() int         { return d.lives }
func (d *Defense) Kills() int         { return d.kills }
func (d *Defense) CreepCount() int    { return creeps.Count(d.world) }
func (d *Defense) TowerCount() int    { return towers.Count(d.world) }
func (d *Defense) Cursor() (int, int) { return d.cursorCol, d.cursorRow }

// GameOver reports whether every life is spent
func (d *Defense) GameOver() bool {
	return d.lives <= 0
}

func (d *Defense) Update(dt float64) {
	if d.world == nil || d.GameOver() {
		return
	}

	d.spawnTimer -= dt
	if d.spawnTimer <= 0 {
		d.spawnCreep()
		d.spawnTimer += SpawnInterval
	}

	d.moveCreeps(dt)
	d.fireTowers(dt)
}

// spawnCreep adds a creep at the start of the lane
func (d *Defense) spawnCreep() {
	e := d.world.Create(Creep)
	Creep.SetValue(d.world.Entry(e), CreepData{X: 0, Y: d.laneY, HP: CreepHP, Speed: CreepSpeed})
}

func (d *Defense) moveCreeps(dt float64) {
	var escaped []donburi.Entity
	creeps.Each(d.world, func(entry *donburi.Entry) {
		c := Creep.Get(entry)
		c.X += c.Speed * dt
		if c.X >= d.width {
			escaped = append(escaped, entry.Entity())
		}
	})

	for _, e := range escaped {
		d.world.Remove(e)
		d.lives--
	}
}

func (d *Defense) fireTowers(dt float64) {
	var dead []donburi.Entity
	towers.Each(d.world, func(entry *donburi.Entry) {
		t := Tower.Get(entry)
		if t.Flash > 0 {
			t.Flash -= dt
		}
		if t.Cooldown > 0 {
			t.Cooldown -= dt
			return
		}

		target := d.nearestCreep(t.X, t.Y)
		if target == nil {
			return
		}

		c := Creep.Get(target)
		c.HP -= TowerDamage
		t.Cooldown = TowerCooldown
		t.ShotX, t.ShotY = c.X, c.Y
		t.Flash = TracerTime
		event.Publish(d.ctx.Bus, event.ShotFiredEvent, event.ShotFired{Mode: Key})

		if c.HP <= 0 {
			dead = append(dead, target.Entity())
		}
	})

	for _, e := range dead {
		if d.world.Valid(e) {
			d.world.Remove(e)
			d.kills++
		}
	}
}

// nearestCreep returns the living creep closest to (x, y) within range
func (d *Defense) nearestCreep(x, y float64) *donburi.Entry {
	var best *donburi.Entry
	bestDist := TowerRange
	creeps.Each(d.world, func(entry *donburi.Entry) {
		c := Creep.Get(entry)
		if c.HP <= 0 {
			return
		}
		if dist := math.Hypot(c.X-x, c.Y-y); dist <= bestDist {
			best = entry
			bestDist = dist
		}
	})
	return best
}

// PlaceTower puts a tower at the center of the cursor cell.
// A cell holds at most one tower and the lane stays free.
func (d *Defense) PlaceTower() bool {
	x := float64(d.cursorCol*CellSize + CellSize/2)
	y := float64(d.cursorRow*CellSize + CellSize/2)
	if math.Abs(y-d.laneY) < CellSize {
		return false
	}

	occupied := false
	towers.Each(d.world, func(entry *donburi.Entry) {
		t := Tower.Get(entry)
		if t.X == x && t.Y == y {
			occupied = true
		}
	})
	if occupied {
		return false
	}

	e := d.world.Create(Tower)
	Tower.SetValue(d.world.Entry(e), TowerData{X: x, Y: y})
	return true
}

// OnInput moves the cursor with WASD and places a tower with Enter.
// After game over Enter restarts.
func (d *Defense) OnInput(ev input.Event) bool {
	if d.world == nil || ev.Kind != input.KeyDown {
		return false
	}

	switch ev.Key {
	case input.KeyW:
		d.cursorRow = max(0, d.cursorRow-1)
	case input.KeyS:
		d.cursorRow = min(d.rows()-1, d.cursorRow+1)
	case input.KeyA:
		d.cursorCol = max(0, d.cursorCol-1)
	case input.KeyD:
		d.cursorCol = min(d.cols()-1, d.cursorCol+1)
	case input.KeyEnter, input.KeySpace:
		if d.GameOver() {
			d.OnEnter()
			return true
		}
		d.PlaceTower()
	default:
		return false
	}
	return true
}

func (d *Defense) Draw(dst render.Surface) {
	if d.world == nil {
		return
	}
	ox, oy := float64(d.ctx.Area.Min.X), float64(d.ctx.Area.Min.Y)

	// Lane
	dst.FillRect(ox, oy+d.laneY-CellSize/2, d.width, CellSize, colorLane)

	creeps.Each(d.world, func(entry *donburi.Entry) {
		c := Creep.Get(entry)
		dst.FillCircle(ox+c.X, oy+c.Y, CreepRadius, colorCreep)
	})

	towers.Each(d.world, func(entry *donburi.Entry) {
		t := Tower.Get(entry)
		dst.FillRect(ox+t.X-CellSize/4, oy+t.Y-CellSize/4, CellSize/2, CellSize/2, colorTower)
		if t.Flash > 0 {
			dst.Line(ox+t.X, oy+t.Y, ox+t.ShotX, oy+t.ShotY, 2, colorTracer)
		}
	})

	th := d.ctx.Runtime
	fontColor := color.Color(color.White)
	highlight := color.Color(color.White)
	if th != nil {
		fontColor = th.Theme().Font
		highlight = th.Theme().Highlight
	}

	// Cursor
	dst.StrokeRect(ox+float64(d.cursorCol*CellSize), oy+float64(d.cursorRow*CellSize), CellSize, CellSize, 2, highlight)

	x, y := d.ctx.Area.Min.X+10, d.ctx.Area.Min.Y+10
	dst.Text(Label, x, y, fontColor)
	dst.Text(fmt.Sprintf("Lives: %d  Kills: %d", d.lives, d.kills), x, y+20, fontColor)
	if d.GameOver() {
		dst.Text("GAME OVER - press Enter", x, y+40, fontColor)
	}
}
