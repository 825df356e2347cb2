// Package registry provides the case-insensitive tables plugins register into.
package registry

import (
	"sort"
	"strings"

	"github.com/younwookim/retroshell/internal/infrastructure/logging"
)

// DefaultCategory is used when a registration names no category
const DefaultCategory = "foreground"

// Entry is one registered factory
type Entry[F any] struct {
	Key      string
	Category string
	Factory  F
}

// Table maps lowercased keys to factories of one kind
type Table[F any] struct {
	kind    string
	entries map[string]Entry[F]
	logger  logging.Logger
}

// NewTable creates an empty table. kind names the table in log lines.
func NewTable[F any](kind string, logger logging.Logger) *Table[F] {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Table[F]{
		kind:    kind,
		entries: make(map[string]Entry[F]),
		logger:  logger,
	}
}

// Register stores factory under key. An existing entry is overwritten
// with a warning.
func (t *Table[F]) Register(key, category string, factory F) {
	key = strings.ToLower(key)
	category = strings.ToLower(category)
	if category == "" {
		category = DefaultCategory
	}

	if old, ok := t.entries[key]; ok {
		t.logger.Warnf("registry", "overwriting %s %q (category %s -> %s)", t.kind, key, old.Category, category)
	}
	t.entries[key] = Entry[F]{Key: key, Category: category, Factory: factory}
	t.logger.Infof("registry", "registered %s %q in %s", t.kind, key, category)
}

// Lookup finds the entry for key, ignoring case
func (t *Table[F]) Lookup(key string) (Entry[F], bool) {
	e, ok := t.entries[strings.ToLower(key)]
	return e, ok
}

// Has reports whether key is registered
func (t *Table[F]) Has(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Keys returns every key in sorted order
func (t *Table[F]) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ByCategory returns the entries of category sorted by key
func (t *Table[F]) ByCategory(category string) []Entry[F] {
	category = strings.ToLower(category)
	var out []Entry[F]
	for _, k := range t.Keys() {
		if e := t.entries[k]; e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func (t *Table[F]) Len() int {
	return len(t.entries)
}

func (t *Table[F]) Kind() string {
	return t.kind
}
