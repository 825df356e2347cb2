package input

import (
	"reflect"

	"github.com/younwookim/retroshell/internal/infrastructure/logging"
)

// Handler receives input events and reports whether it consumed them
type Handler interface {
	OnInput(ev Event) bool
}

// GlobalHandler is implemented by handlers that also take global keys
type GlobalHandler interface {
	OnGlobalInput(ev Event) bool
}

// Manager dispatches events to registered handlers in registration order
type Manager struct {
	handlers   []Handler
	globalKeys map[Key]bool
	logger     logging.Logger
}

// NewManager creates an empty input manager
func NewManager(logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Manager{
		globalKeys: make(map[Key]bool),
		logger:     logger,
	}
}

// Register adds h. Registering the same handler twice is a no-op.
func (m *Manager) Register(h Handler) {
	for _, existing := range m.handlers {
		if sameHandler(existing, h) {
			return
		}
	}
	m.handlers = append(m.handlers, h)
}

// Unregister removes h if present
func (m *Manager) Unregister(h Handler) {
	for i, existing := range m.handlers {
		if sameHandler(existing, h) {
			m.handlers = append(m.handlers[:i], m.handlers[i+1:]...)
			return
		}
	}
}

// sameHandler compares handlers by identity. Handlers whose values cannot be
// compared never match.
func sameHandler(a, b Handler) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// SetGlobalKeys replaces the set of keys routed to global handlers
func (m *Manager) SetGlobalKeys(keys ...Key) {
	m.globalKeys = make(map[Key]bool, len(keys))
	for _, k := range keys {
		m.globalKeys[k] = true
	}
}

// SetGlobalKeyNames parses key names from configuration.
// Unknown names are logged and skipped.
func (m *Manager) SetGlobalKeyNames(names []string) {
	keys := make([]Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			m.logger.Warnf("input", "ignoring global key: %v", err)
			continue
		}
		keys = append(keys, k)
	}
	m.SetGlobalKeys(keys...)
}

// IsGlobal reports whether k is a global key
func (m *Manager) IsGlobal(k Key) bool {
	return m.globalKeys[k]
}

// Len returns the number of registered handlers
func (m *Manager) Len() int {
	return len(m.handlers)
}

// Process routes ev and reports whether a handler consumed it.
// Global key-downs only reach GlobalHandlers and never fall through.
func (m *Manager) Process(ev Event) bool {
	if ev.Kind == KeyDown && m.globalKeys[ev.Key] {
		for _, h := range m.handlers {
			g, ok := h.(GlobalHandler)
			if !ok {
				continue
			}
			if g.OnGlobalInput(ev) {
				return true
			}
		}
		return false
	}

	for _, h := range m.handlers {
		if h.OnInput(ev) {
			return true
		}
	}
	return false
}

// ProcessAll routes every event in order
func (m *Manager) ProcessAll(events []Event) {
	for _, ev := range events {
		m.Process(ev)
	}
}
