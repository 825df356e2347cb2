// Package event carries shell notifications between loosely coupled parts
// (scenes, menus, audio) through a donburi event world.
package event

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneChanged is published when the scene manager switches scenes
type SceneChanged struct {
	From string
	To   string
}

// MenuMoved is published when a menu selection moves
type MenuMoved struct {
	Menu  string
	Index int
}

// MenuSelected is published when a menu item is chosen
type MenuSelected struct {
	Menu  string
	Label string
}

// ThemeChanged is published when a new theme is applied
type ThemeChanged struct {
	Name string
}

// ShotFired is published by play modes when something fires
type ShotFired struct {
	Mode string
}

var (
	SceneChangedEvent = events.NewEventType[SceneChanged]()
	MenuMovedEvent    = events.NewEventType[MenuMoved]()
	MenuSelectedEvent = events.NewEventType[MenuSelected]()
	ThemeChangedEvent = events.NewEventType[ThemeChanged]()
	ShotFiredEvent    = events.NewEventType[ShotFired]()
)

// Bus queues events until Flush delivers them to subscribers
type Bus struct {
	world donburi.World
}

// NewBus creates a bus backed by its own donburi world
func NewBus() *Bus {
	return &Bus{world: donburi.NewWorld()}
}

// World exposes the backing world
func (b *Bus) World() donburi.World {
	return b.world
}

// Publish queues ev. A nil bus drops it.
func Publish[T any](b *Bus, t *events.EventType[T], ev T) {
	if b == nil {
		return
	}
	t.Publish(b.world, ev)
}

// Subscribe registers fn for events of type t
func Subscribe[T any](b *Bus, t *events.EventType[T], fn func(ev T)) {
	if b == nil {
		return
	}
	t.Subscribe(b.world, func(w donburi.World, ev T) {
		fn(ev)
	})
}

// Flush delivers every queued event. The shell calls it once per frame
// after update.
func (b *Bus) Flush() {
	SceneChangedEvent.ProcessEvents(b.world)
	MenuMovedEvent.ProcessEvents(b.world)
	MenuSelectedEvent.ProcessEvents(b.world)
	ThemeChangedEvent.ProcessEvents(b.world)
	ShotFiredEvent.ProcessEvents(b.world)
}
