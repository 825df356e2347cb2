// Package scenes holds the built-in scenes of the shell.
package scenes

import (
	"github.com/younwookim/retroshell/internal/application/content/layers"
	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/plugin"
	"github.com/younwookim/retroshell/internal/application/scene"
)

// ThemeBlendDuration is how long the settings scene takes to fade into a
// newly chosen theme
const ThemeBlendDuration = 1.0

// Plugin registers the built-in scenes
func Plugin() plugin.Plugin {
	return plugin.Func("scenes", func(p *plugin.Plugins) {
		p.Scenes.Register(scene.KeyMenu, "", NewMenu)
		p.Scenes.Register(scene.KeyGameModeSelection, "", NewGameModeSelection)
		p.Scenes.Register(scene.KeySettings, "", NewSettings)
		p.Scenes.Register(scene.KeyPlay, "", NewPlay)
		p.Scenes.Register(scene.KeyTest, "", NewTest)
	})
}

// addParticles spawns the menu particle effect and points it at sel
func addParticles(b *scene.BaseScene, sel layers.Selectable) {
	l := b.Spawn(layers.KeyMenuParticles)
	if p, ok := l.(*layers.MenuParticles); ok {
		p.Follow(sel)
	}
}

// Menu is the main menu
type Menu struct {
	*scene.BaseScene
	menu *layers.Menu
}

func NewMenu(env *plugin.Env) scene.Scene {
	return &Menu{BaseScene: scene.NewBaseScene(scene.KeyMenu, env.Deps)}
}

func (m *Menu) OnEnter() {
	m.Populate()

	m.menu = nil
	if l, ok := m.Spawn(layers.KeyMenu).(*layers.Menu); ok {
		m.menu = l
		addParticles(m.BaseScene, l)
	}
}

// MenuLayer returns the menu built on the last entry, or nil
func (m *Menu) MenuLayer() *layers.Menu { return m.menu }

// GameModeSelection lists the play modes. The last highlighted entry is
// remembered across visits.
type GameModeSelection struct {
	*scene.BaseScene
	env           *plugin.Env
	lastSelection int
}

func NewGameModeSelection(env *plugin.Env) scene.Scene {
	return &GameModeSelection{
		BaseScene: scene.NewBaseScene(scene.KeyGameModeSelection, env.Deps),
		env:       env,
	}
}

func (g *GameModeSelection) LastSelection() int { return g.lastSelection }

func (g *GameModeSelection) OnEnter() {
	g.Populate()

	var m *layers.Menu
	m = layers.NewGameModeSelection(g.Font(), g.Runtime(), g.env.Bus, g.env.PlayModes.Keys(),
		func(key string) {
			g.lastSelection = m.SelectedIndex()
			g.Runtime().SetSelectedGameMode(key)
			g.env.Navigator.SetScene(scene.KeyPlay)
		},
		func() {
			g.lastSelection = m.SelectedIndex()
			g.env.Navigator.SetScene(scene.KeyMenu)
		})
	m.Select(g.lastSelection)
	m.OnMove = func(i int) { g.lastSelection = i }

	g.Layers().Add(m)
	addParticles(g.BaseScene, m)
}

// Settings lets the user pick a theme. The new theme is blended in and the
// scene is rebuilt around it.
type Settings struct {
	*scene.BaseScene
	env      *plugin.Env
	selected int
}

func NewSettings(env *plugin.Env) scene.Scene {
	return &Settings{BaseScene: scene.NewBaseScene(scene.KeySettings, env.Deps), env: env}
}

func (s *Settings) OnEnter() {
	s.Populate()

	var m *layers.Menu
	m = layers.NewThemeSelection(s.Font(), s.Runtime(), s.env.Bus, s.env.Themes.Keys(),
		func(key string) {
			s.selected = m.SelectedIndex()
			s.apply(key)
		},
		func() {
			s.selected = 0
			s.env.Navigator.SetScene(scene.KeyMenu)
		})
	m.Select(s.selected)

	s.Layers().Add(m)
	addParticles(s.BaseScene, m)
}

func (s *Settings) apply(key string) {
	e, ok := s.env.Themes.Lookup(key)
	if !ok {
		s.Logger().Warnf("settings", "theme %q not found", key)
		return
	}

	s.Runtime().BlendTheme(e.Factory(), ThemeBlendDuration)
	event.Publish(s.env.Bus, event.ThemeChangedEvent, event.ThemeChanged{Name: e.Key})
	s.Logger().Infof("settings", "theme changed to %s", e.Key)
	s.refresh()
}

// refresh rebuilds the layers so everything picks up the new theme
func (s *Settings) refresh() {
	s.OnEnter()
}
