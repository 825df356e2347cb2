package ecs

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Play area size; positions wrap or cull against it
	Width  float64
	Height float64

	// Components
	Position map[EntityID]Position
	Velocity map[EntityID]Velocity
	Heading  map[EntityID]Heading
	Thruster map[EntityID]Thruster

	// Tags
	IsShip   map[EntityID]struct{}
	IsBullet map[EntityID]struct{}

	// Singleton references
	ShipID EntityID
}

// NewWorld creates a new empty world for a play area of w x h pixels
func NewWorld(w, h float64) *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Width:    w,
		Height:   h,
		Position: make(map[EntityID]Position),
		Velocity: make(map[EntityID]Velocity),
		Heading:  make(map[EntityID]Heading),
		Thruster: make(map[EntityID]Thruster),
		IsShip:   make(map[EntityID]struct{}),
		IsBullet: make(map[EntityID]struct{}),
	}
}

// Resize changes the play area size. Positions are scaled so entities keep
// their place relative to the edges.
func (w *World) Resize(width, height float64) {
	sx, sy := 1.0, 1.0
	if w.Width > 0 {
		sx = width / w.Width
	}
	if w.Height > 0 {
		sy = height / w.Height
	}
	for id, pos := range w.Position {
		w.Position[id] = Position{X: pos.X * sx, Y: pos.Y * sy}
	}
	w.Width, w.Height = width, height
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Heading, id)
	delete(w.Thruster, id)
	delete(w.IsShip, id)
	delete(w.IsBullet, id)
	if w.ShipID == id {
		w.ShipID = 0
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// CreateShip creates the player ship at rest, facing right
func (w *World) CreateShip(x, y float64) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: x, Y: y}
	w.Velocity[id] = Velocity{}
	w.Heading[id] = Heading{}
	w.Thruster[id] = Thruster{}
	w.IsShip[id] = struct{}{}

	w.ShipID = id
	return id
}

// CreateBullet creates a bullet at (x, y) moving with velocity v
func (w *World) CreateBullet(x, y float64, v Velocity) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: x, Y: y}
	w.Velocity[id] = v
	w.IsBullet[id] = struct{}{}

	return id
}

// BulletCount returns the number of live bullets
func (w *World) BulletCount() int {
	return len(w.IsBullet)
}
