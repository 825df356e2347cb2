package layer

import (
	"reflect"
	"slices"
	"sort"

	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Manager keeps the layers of the current scene and a cached view sorted
// by order key. Persistent layers survive Clear.
type Manager struct {
	layers []Layer
	sorted []Layer
	dirty  bool
}

// NewManager creates an empty layer manager
func NewManager() *Manager {
	return &Manager{}
}

// Add appends l. The same layer may be added more than once.
func (m *Manager) Add(l Layer) {
	m.layers = append(m.layers, l)
	m.dirty = true
}

// Remove drops the first occurrence of l, if any
func (m *Manager) Remove(l Layer) {
	for i, existing := range m.layers {
		if Same(existing, l) {
			m.layers = slices.Delete(m.layers, i, i+1)
			m.dirty = true
			return
		}
	}
}

// Same reports whether a and b are the same layer. Values that cannot be
// compared, such as slice layers, are never the same.
func Same(a, b Layer) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Clear drops every non-persistent layer
func (m *Manager) Clear() {
	kept := m.layers[:0]
	for _, l := range m.layers {
		if l.Persistent() {
			kept = append(kept, l)
		}
	}
	clear(m.layers[len(kept):])
	m.layers = kept
	m.dirty = true
}

// MarkDirty forces a re-sort, for callers that changed an order key
func (m *Manager) MarkDirty() {
	m.dirty = true
}

func (m *Manager) ensureSorted() {
	if !m.dirty && m.sorted != nil {
		return
	}
	m.sorted = append(m.sorted[:0], m.layers...)
	sort.SliceStable(m.sorted, func(i, j int) bool {
		return m.sorted[i].OrderKey() < m.sorted[j].OrderKey()
	})
	m.dirty = false
}

// Update updates every layer in ascending order key
func (m *Manager) Update(dt float64) {
	m.ensureSorted()
	// layers may add or remove layers while updating
	for _, l := range slices.Clone(m.sorted) {
		l.Update(dt)
	}
}

// Draw draws every layer in ascending order key
func (m *Manager) Draw(s render.Surface) {
	m.ensureSorted()
	for _, l := range m.sorted {
		l.Draw(s)
	}
}

// DrawDynamic draws only non-persistent layers
func (m *Manager) DrawDynamic(s render.Surface) {
	m.ensureSorted()
	for _, l := range m.sorted {
		if !l.Persistent() {
			l.Draw(s)
		}
	}
}

// DrawPersistent draws only persistent layers
func (m *Manager) DrawPersistent(s render.Surface) {
	m.ensureSorted()
	for _, l := range m.sorted {
		if l.Persistent() {
			l.Draw(s)
		}
	}
}

// Sorted returns a copy of the ordered view, highest key first when reverse is set
func (m *Manager) Sorted(reverse bool) []Layer {
	m.ensureSorted()
	out := slices.Clone(m.sorted)
	if reverse {
		slices.Reverse(out)
	}
	return out
}

// Layers returns a copy of the layers in insertion order
func (m *Manager) Layers() []Layer {
	return slices.Clone(m.layers)
}

func (m *Manager) Len() int {
	return len(m.layers)
}

// Contains reports whether any layer matches pred
func (m *Manager) Contains(pred func(Layer) bool) bool {
	return slices.ContainsFunc(m.layers, pred)
}

// HasKey reports whether a layer built from registry key is present
func (m *Manager) HasKey(key string) bool {
	return m.Contains(func(l Layer) bool {
		k, ok := l.(Keyed)
		return ok && k.RegistryKey() == key
	})
}
