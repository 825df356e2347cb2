// Package content registers the built-in themes, transitions, play modes,
// layers and scenes.
package content

import (
	"github.com/younwookim/retroshell/internal/application/content/layers"
	"github.com/younwookim/retroshell/internal/application/content/scenes"
	"github.com/younwookim/retroshell/internal/application/playmode/spaceshooter"
	"github.com/younwookim/retroshell/internal/application/playmode/towerdefense"
	"github.com/younwookim/retroshell/internal/application/plugin"
	"github.com/younwookim/retroshell/internal/application/transition"
	"github.com/younwookim/retroshell/internal/domain/theme"
)

// TransitionSimple is the cross-fade
const TransitionSimple = "simple"

// Core registers the themes, the cross-fade and the play modes
func Core() plugin.Plugin {
	return plugin.Func("core", func(p *plugin.Plugins) {
		for name, f := range theme.Builtins() {
			p.Themes.Register(name, "", f)
		}
		p.Transitions.Register(TransitionSimple, "", transition.NewCrossFade)
		p.PlayModes.Register(spaceshooter.Key, "", spaceshooter.New)
		p.PlayModes.Register(towerdefense.Key, "", towerdefense.New)
	})
}

// All returns every built-in plugin in registration order
func All(svc layers.Services) []plugin.Plugin {
	return []plugin.Plugin{
		Core(),
		layers.Plugin(svc),
		scenes.Plugin(),
	}
}
