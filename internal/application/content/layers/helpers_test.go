package layers

import (
	"image"
	"testing"

	"github.com/younwookim/retroshell/internal/application/scene"
	"github.com/younwookim/retroshell/internal/domain/theme"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// 800x600 at scale 1, default theme
func newRuntime(t *testing.T) *config.Runtime {
	t.Helper()
	return config.NewRuntime(config.Defaults(), theme.Default())
}

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

var testFont = render.DefaultFont()

type mockNavigator struct {
	scenes []string
	backs  int
}

func (m *mockNavigator) SetScene(name string, _ ...scene.Option) { m.scenes = append(m.scenes, name) }
func (m *mockNavigator) Back()                                   { m.backs++ }
