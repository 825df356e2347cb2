package towerdefense

import (
	"github.com/yohamta/donburi"
)

// CreepData is a walker on the lane
type CreepData struct {
	X, Y  float64
	HP    int
	Speed float64
}

// TowerData is a placed tower
type TowerData struct {
	X, Y     float64
	Cooldown float64 // seconds until it can fire again
	// last shot, kept for a short tracer
	ShotX, ShotY float64
	Flash        float64
}

var (
	Creep = donburi.NewComponentType[CreepData]()
	Tower = donburi.NewComponentType[TowerData]()
)

// Tuning of the tower defense mode
const (
	SpawnInterval = 1.5   // seconds between creeps
	CreepSpeed    = 40.0  // px/sec
	CreepHP       = 3
	CreepRadius   = 8.0
	TowerRange    = 120.0 // px
	TowerCooldown = 0.8   // seconds
	TowerDamage   = 1
	TracerTime    = 0.1 // seconds
	CellSize      = 40
	StartLives    = 10
)
