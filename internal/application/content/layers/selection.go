package layers

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// BackLabel is the last entry of every selection list
const BackLabel = "Back"

// NewThemeSelection lists the theme keys, in order, followed by Back.
// apply receives the chosen key.
func NewThemeSelection(font render.Font, cfg *config.Runtime, bus *event.Bus, keys []string, apply func(key string), back func()) *Menu {
	items := make([]Item, 0, len(keys)+1)
	for _, k := range keys {
		items = append(items, Item{Label: k, Action: func() { apply(k) }})
	}
	items = append(items, Item{Label: BackLabel, Action: back})

	m := NewMenu(font, cfg, bus, "themes", "Select Theme", items)
	m.SetOrderKey(layer.ZMenu + 1)
	return m
}

// NewGameModeSelection lists the play mode keys, title-cased, followed by
// Back. choose receives the registry key, not the label.
func NewGameModeSelection(font render.Font, cfg *config.Runtime, bus *event.Bus, keys []string, choose func(key string), back func()) *Menu {
	title := cases.Title(language.English)

	items := make([]Item, 0, len(keys)+1)
	for _, k := range keys {
		items = append(items, Item{Label: title.String(k), Action: func() { choose(k) }})
	}
	items = append(items, Item{Label: BackLabel, Action: back})

	m := NewMenu(font, cfg, bus, "game modes", "Select Game Mode", items)
	m.SetOrderKey(layer.ZMenu + 1)
	return m
}
