package layers

import (
	"image"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/application/scene"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Selectable is a layer with a highlighted button that effects can follow
type Selectable interface {
	SelectedIndex() int
	SelectedRect() image.Rectangle
}

// Item is one menu entry
type Item struct {
	Label  string
	Action func()
}

// Menu is a title above a vertical list of buttons.
// W/S (or the arrows) move the selection and wrap around, Enter/Space
// activates it. The pointer selects by hovering and activates by clicking.
type Menu struct {
	layer.Base
	name     string
	title    string
	font     render.Font
	cfg      *config.Runtime
	bus      *event.Bus
	items    []Item
	selected int

	centerTitle bool
	debounce    float64
	clock       float64
	lastNav     float64
	navigated   bool

	// OnMove is called after the selection changes
	OnMove func(index int)
}

// NewMenu creates a menu. name tags the bus events the menu publishes.
func NewMenu(font render.Font, cfg *config.Runtime, bus *event.Bus, name, title string, items []Item) *Menu {
	return &Menu{
		Base:  layer.Base{Z: layer.ZMenu},
		name:  name,
		title: title,
		font:  font,
		cfg:   cfg,
		bus:   bus,
		items: items,
	}
}

// SetDebounce ignores navigation keys that arrive within d seconds of the
// previous one
func (m *Menu) SetDebounce(d float64) { m.debounce = d }

// SetCenteredTitle places the title right above the buttons instead of at
// the top of the screen
func (m *Menu) SetCenteredTitle(on bool) { m.centerTitle = on }

func (m *Menu) Name() string       { return m.name }
func (m *Menu) Title() string      { return m.title }
func (m *Menu) Items() []Item      { return m.items }
func (m *Menu) SelectedIndex() int { return m.selected }

// Select moves the selection to i, clamped to the items
func (m *Menu) Select(i int) {
	if len(m.items) == 0 {
		return
	}
	m.selected = max(0, min(len(m.items)-1, i))
}

func (m *Menu) SelectedRect() image.Rectangle {
	buttons := m.layout().buttons
	if m.selected >= len(buttons) {
		return image.Rectangle{}
	}
	return buttons[m.selected]
}

type menuLayout struct {
	titleX, titleY int
	buttons        []image.Rectangle
}

func (m *Menu) layout() menuLayout {
	w, h := m.cfg.ScreenWidth(), m.cfg.ScreenHeight()
	bw := m.cfg.ScaleValue(ButtonWidth)
	bh := m.cfg.ScaleValue(ButtonHeight)
	margin := m.cfg.ScaleValue(ButtonMargin)
	top := m.cfg.ScaleValue(TitleYOffset)
	titleW, titleH := m.font.Measure(m.title)

	n := len(m.items)
	total := titleH + margin + n*bh + (n-1)*margin

	// long lists shrink to fit between the title offset and the bottom
	if avail := h - 2*top; n > 0 && total > avail && total > titleH {
		f := float64(avail-titleH) / float64(total-titleH)
		bh = int(float64(bh) * f)
		margin = int(float64(margin) * f)
		total = titleH + margin + n*bh + (n-1)*margin
	}

	startY := (h - total) / 2
	l := menuLayout{titleX: (w - titleW) / 2, titleY: top}
	if m.centerTitle {
		l.titleY = startY
	}

	x := (w - bw) / 2
	y := startY + titleH + margin
	l.buttons = make([]image.Rectangle, n)
	for i := range l.buttons {
		by := y + i*(bh+margin)
		l.buttons[i] = image.Rect(x, by, x+bw, by+bh)
	}
	return l
}

func (m *Menu) Update(dt float64) {
	m.clock += dt
}

func (m *Menu) Draw(dst render.Surface) {
	th := m.cfg.Theme()
	l := m.layout()
	dst.Text(m.title, l.titleX, l.titleY, th.Title)

	for i, rect := range l.buttons {
		drawButton(dst, m.font, rect, m.items[i].Label, i == m.selected, th.ButtonNormal, th.ButtonSelected, th.Highlight)
	}
}

func (m *Menu) OnInput(ev input.Event) bool {
	if len(m.items) == 0 {
		return false
	}
	if ev.IsPointer() {
		return m.onPointer(ev)
	}
	if ev.Kind != input.KeyDown {
		return false
	}

	step := 0
	switch ev.Key {
	case input.KeyW, input.KeyArrowUp:
		step = -1
	case input.KeyS, input.KeyArrowDown:
		step = 1
	case input.KeyEnter, input.KeySpace:
	default:
		return false
	}

	if m.navigated && m.clock-m.lastNav < m.debounce {
		return true
	}
	m.navigated = true
	m.lastNav = m.clock

	if step == 0 {
		m.activate()
		return true
	}
	n := len(m.items)
	m.moveTo((m.selected + step + n) % n)
	return true
}

func (m *Menu) onPointer(ev input.Event) bool {
	hit := -1
	pt := image.Pt(ev.X, ev.Y)
	for i, rect := range m.layout().buttons {
		if pt.In(rect) {
			hit = i
			break
		}
	}
	if hit < 0 {
		return false
	}

	switch ev.Kind {
	case input.PointerMove:
		m.moveTo(hit)
	case input.PointerDown:
		m.moveTo(hit)
		m.activate()
	}
	return true
}

func (m *Menu) moveTo(i int) {
	if i == m.selected {
		return
	}
	m.selected = i
	event.Publish(m.bus, event.MenuMovedEvent, event.MenuMoved{Menu: m.name, Index: i})
	if m.OnMove != nil {
		m.OnMove(i)
	}
}

func (m *Menu) activate() {
	item := m.items[m.selected]
	event.Publish(m.bus, event.MenuSelectedEvent, event.MenuSelected{Menu: m.name, Label: item.Label})
	if item.Action != nil {
		item.Action()
	}
}

// MainMenuFactory builds the menu_layer factory: Play, Settings and Quit
func MainMenuFactory(svc Services) layer.Factory {
	return func(font render.Font, cfg *config.Runtime) layer.Layer {
		if font == nil || cfg == nil {
			return nil
		}
		goTo := func(key string) func() {
			return func() {
				if svc.Navigator != nil {
					svc.Navigator.SetScene(key)
				}
			}
		}

		m := NewMenu(font, cfg, svc.Bus, "main", "MAIN MENU", []Item{
			{Label: "Play", Action: goTo(scene.KeyGameModeSelection)},
			{Label: "Settings", Action: goTo(scene.KeySettings)},
			{Label: "Quit", Action: svc.quit},
		})
		m.SetDebounce(MenuDebounce)
		m.SetCenteredTitle(true)
		return m
	}
}
