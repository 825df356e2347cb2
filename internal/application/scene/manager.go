package scene

import (
	"slices"
	"strings"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/application/state"
	"github.com/younwookim/retroshell/internal/application/transition"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// DefaultHome is the scene back navigation falls back to
const DefaultHome = "menu"

type setOptions struct {
	kind     string
	duration float64
	history  bool
}

// Option adjusts a single SetScene call
type Option func(*setOptions)

// WithTransition selects the transition kind, "" for none
func WithTransition(kind string) Option {
	return func(o *setOptions) { o.kind = kind }
}

// WithDuration sets the transition duration in seconds
func WithDuration(d float64) Option {
	return func(o *setOptions) { o.duration = d }
}

// WithoutHistory keeps the outgoing scene off the back stack
func WithoutHistory() Option {
	return func(o *setOptions) { o.history = false }
}

// Manager owns the registered scenes, the back-navigation history and the
// in-flight transition.
type Manager struct {
	scenes      map[string]Scene
	current     Scene
	currentKey  string
	history     []string
	state       state.SceneState
	transition  transition.Transition
	transitions *registry.Table[transition.Factory]
	kind        string
	duration    float64
	home        string
	bus         *event.Bus
	logger      logging.Logger
}

// NewManager creates a scene manager. transitions may be nil, in which
// case scene changes are instant.
func NewManager(transitions *registry.Table[transition.Factory], bus *event.Bus, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Manager{
		scenes:      make(map[string]Scene),
		transitions: transitions,
		kind:        "simple",
		duration:    1.0,
		home:        DefaultHome,
		bus:         bus,
		logger:      logger,
	}
}

// SetDefaultTransition sets the transition used when SetScene names none
func (m *Manager) SetDefaultTransition(kind string, duration float64) {
	m.kind = kind
	m.duration = duration
}

// SetHome sets the scene Back falls back to on an empty history
func (m *Manager) SetHome(name string) {
	m.home = strings.ToLower(name)
}

// AddScene registers s under name
func (m *Manager) AddScene(name string, s Scene) {
	m.scenes[strings.ToLower(name)] = s
}

// Scene returns the scene registered under name
func (m *Manager) Scene(name string) (Scene, bool) {
	s, ok := m.scenes[strings.ToLower(name)]
	return s, ok
}

// SetScene makes name the current scene. The outgoing scene exits and the
// incoming one enters before the transition starts, so the new scene is
// live while it fades in. Switching to the current scene does nothing.
func (m *Manager) SetScene(name string, opts ...Option) {
	o := setOptions{kind: m.kind, duration: m.duration, history: true}
	for _, opt := range opts {
		opt(&o)
	}

	key := strings.ToLower(name)
	next, ok := m.scenes[key]
	if !ok {
		m.logger.Warnf("scene", "no scene registered as %q", name)
		return
	}
	if m.current != nil && key == m.currentKey {
		return
	}

	prev, prevKey := m.current, m.currentKey
	if prev != nil {
		prev.OnExit()
	}
	next.OnEnter()

	if prev != nil && o.history {
		m.history = append(m.history, prevKey)
	}
	m.current = next
	m.currentKey = key

	// a new scene change replaces any fade still running
	m.transition = nil
	m.state = state.Active
	if t := m.newTransition(o, prev, next); t != nil {
		m.transition = t
		m.state = state.Transitioning
	}

	m.logger.Infof("scene", "%q -> %q (history %d)", prevKey, key, len(m.history))
	event.Publish(m.bus, event.SceneChangedEvent, event.SceneChanged{From: prevKey, To: key})
}

func (m *Manager) newTransition(o setOptions, prev, next Scene) transition.Transition {
	if m.transitions == nil || o.kind == "" {
		return nil
	}
	e, ok := m.transitions.Lookup(o.kind)
	if !ok {
		m.logger.Warnf("scene", "no transition registered as %q", o.kind)
		return nil
	}

	var from transition.Target
	if prev != nil {
		from = prev
	}
	t := e.Factory(from, next, o.duration)
	if t == nil || t.IsComplete() {
		return nil
	}
	return t
}

// Back returns to the previous scene, or home when there is none
func (m *Manager) Back() {
	if n := len(m.history); n > 0 {
		prev := m.history[n-1]
		m.history = m.history[:n-1]
		m.SetScene(prev, WithoutHistory())
		return
	}
	m.SetScene(m.home, WithoutHistory())
}

// OnGlobalInput handles a global key by navigating back. It always
// consumes the event.
func (m *Manager) OnGlobalInput(ev input.Event) bool {
	m.Back()
	return true
}

// OnInput forwards ev to the current scene, even mid-transition
func (m *Manager) OnInput(ev input.Event) bool {
	if m.current == nil {
		return false
	}
	return m.current.OnInput(ev)
}

// Update advances the transition or, when none is running, the current scene
func (m *Manager) Update(dt float64) {
	switch m.state {
	case state.Transitioning:
		m.transition.Update(dt)
		if m.transition.IsComplete() {
			m.transition = nil
			m.state = state.Active
		}
	case state.Active:
		m.current.Update(dt)
	}
}

// Draw renders the transition when one is running, otherwise the scene
func (m *Manager) Draw(s render.Surface) {
	if m.transition != nil {
		m.transition.Draw(s)
		return
	}
	if m.current != nil {
		m.current.Draw(s)
	}
}

func (m *Manager) Current() Scene                    { return m.current }
func (m *Manager) CurrentKey() string                { return m.currentKey }
func (m *Manager) History() []string                 { return slices.Clone(m.history) }
func (m *Manager) State() state.SceneState           { return m.state }
func (m *Manager) Transition() transition.Transition { return m.transition }
func (m *Manager) Home() string                      { return m.home }
