package layers

import (
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// InstructionText is shown at the bottom-left of every scene
const InstructionText = "Use W/S to navigate, Enter to select, Q/Esc to return."

// Instruction shows the control hint
type Instruction struct {
	layer.Base
	cfg *config.Runtime
}

// NewInstruction is the instruction factory
func NewInstruction(_ render.Font, cfg *config.Runtime) layer.Layer {
	if cfg == nil {
		return nil
	}
	return &Instruction{Base: layer.Base{Z: layer.ZInstructions}, cfg: cfg}
}

func (i *Instruction) Draw(dst render.Surface) {
	x := i.cfg.ScaleValue(InstructionLeft)
	y := i.cfg.ScreenHeight() - i.cfg.ScaleValue(InstructionBottom)
	dst.Text(InstructionText, x, y, i.cfg.Theme().Instruction)
}

// Border frames the screen in the theme border color.
// The color is read on every draw so theme changes show immediately.
type Border struct {
	layer.Base
	cfg *config.Runtime
}

// NewBorder is the border factory
func NewBorder(_ render.Font, cfg *config.Runtime) layer.Layer {
	if cfg == nil {
		return nil
	}
	return &Border{Base: layer.Base{Z: layer.ZBorder, Persist: true}, cfg: cfg}
}

func (b *Border) Draw(dst render.Surface) {
	thickness := float64(b.cfg.ScaleValue(BorderThickness))
	w, h := float64(b.cfg.ScreenWidth()), float64(b.cfg.ScreenHeight())
	dst.StrokeRect(0, 0, w, h, thickness, b.cfg.Theme().Border)
}
