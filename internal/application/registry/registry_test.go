package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warns []string
	infos int
}

func (r *recordingLogger) Infof(component, format string, args ...any) { r.infos++ }
func (r *recordingLogger) Warnf(component, format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Errorf(component, format string, args ...any) {}

func TestTable_LastWriteWinsCaseInsensitive(t *testing.T) {
	logger := &recordingLogger{}
	table := NewTable[string]("layer", logger)

	table.Register("Foo", "effect", "first")
	table.Register("foo", "effect", "second")

	e, ok := table.Lookup("FOO")
	require.True(t, ok)
	assert.Equal(t, "second", e.Factory)
	assert.Equal(t, "foo", e.Key)
	assert.Equal(t, 1, table.Len())
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], `"foo"`)
	assert.Equal(t, 2, logger.infos)
}

func TestTable_DefaultCategory(t *testing.T) {
	table := NewTable[int]("layer", nil)
	table.Register("instruction", "", 1)
	table.Register("Border", "FOREGROUND", 2)

	e, ok := table.Lookup("instruction")
	require.True(t, ok)
	assert.Equal(t, DefaultCategory, e.Category)

	fg := table.ByCategory("Foreground")
	require.Len(t, fg, 2)
	assert.Equal(t, "border", fg[0].Key)
	assert.Equal(t, "instruction", fg[1].Key)
}

func TestTable_LookupMiss(t *testing.T) {
	table := NewTable[int]("scene", nil)
	_, ok := table.Lookup("missing")
	assert.False(t, ok)
	assert.False(t, table.Has("missing"))
	assert.Empty(t, table.ByCategory("background"))
}

func TestTable_KeysSorted(t *testing.T) {
	table := NewTable[int]("theme", nil)
	for i, k := range []string{"retro80", "Default", "light"} {
		table.Register(k, "", i)
	}
	assert.Equal(t, []string{"default", "light", "retro80"}, table.Keys())
	assert.Equal(t, "theme", table.Kind())
}
