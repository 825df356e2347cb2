package layers

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"slices"

	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/domain/theme"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// Particle tuning
const (
	ParticleGravity       = 500.0 // px/sec^2
	ParticleLifetime      = 1.0   // seconds
	ParticleRadius        = 6.0
	ParticlesPerSpawn     = 5
	ParticleSpawnInterval = 0.2 // seconds
	ParticleSpeedMin      = 20.0
	ParticleSpeedMax      = 50.0
	PaletteBlendTime      = 1.0 // seconds to catch up with a new theme
)

// Particle is one falling spark
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   color.RGBA
}

// MenuParticles sprinkles sparks around the selected button of a
// Selectable layer. The palette drifts toward the theme's particle colors
// so a theme change does not restart the effect.
type MenuParticles struct {
	layer.Base
	cfg       *config.Runtime
	rng       *rand.Rand
	target    Selectable
	lastIndex int
	timer     float64
	palette   []color.RGBA
	particles []Particle
}

// NewMenuParticles is the menu_particle_effect factory. The layer is idle
// until Follow gives it something to track.
func NewMenuParticles(_ render.Font, cfg *config.Runtime) layer.Layer {
	if cfg == nil {
		return nil
	}
	return &MenuParticles{
		Base:      layer.Base{Z: layer.ZBackgroundArt},
		cfg:       cfg,
		rng:       newRand(cfg),
		lastIndex: -1,
		palette:   slices.Clone(cfg.Theme().Particles),
	}
}

// Follow makes the particles track sel
func (p *MenuParticles) Follow(sel Selectable) {
	p.target = sel
	if sel != nil {
		p.lastIndex = sel.SelectedIndex()
	}
}

func (p *MenuParticles) Particles() []Particle { return p.particles }
func (p *MenuParticles) Palette() []color.RGBA { return p.palette }

func (p *MenuParticles) Update(dt float64) {
	p.palette = theme.LerpPalette(p.palette, p.cfg.Theme().Particles, min(1, dt/PaletteBlendTime))

	alive := p.particles[:0]
	for _, pt := range p.particles {
		pt.VY += ParticleGravity * dt
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.Life -= dt
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	p.particles = alive

	if p.target == nil {
		return
	}

	// a selection change gets an immediate burst
	if idx := p.target.SelectedIndex(); idx != p.lastIndex {
		p.spawn(p.target.SelectedRect())
		p.lastIndex = idx
	}

	p.timer += dt
	if p.timer >= ParticleSpawnInterval {
		p.spawn(p.target.SelectedRect())
		p.timer = 0
	}
}

// spawn adds a handful of particles, normally distributed around the
// center of rect and clamped inside it
func (p *MenuParticles) spawn(rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	sx := float64(rect.Dx()) / 4
	sy := float64(rect.Dy()) / 4

	for range ParticlesPerSpawn {
		x := clamp(cx+p.rng.NormFloat64()*sx, float64(rect.Min.X), float64(rect.Max.X))
		y := clamp(cy+p.rng.NormFloat64()*sy, float64(rect.Min.Y), float64(rect.Max.Y))

		// mostly straight down
		angle := (80 + p.rng.Float64()*20) * math.Pi / 180
		speed := ParticleSpeedMin + p.rng.Float64()*(ParticleSpeedMax-ParticleSpeedMin)

		c := color.RGBA{255, 255, 255, 255}
		if len(p.palette) > 0 {
			c = p.palette[p.rng.Intn(len(p.palette))]
		}

		p.particles = append(p.particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    ParticleLifetime,
			MaxLife: ParticleLifetime,
			Color:   c,
		})
	}
}

func (p *MenuParticles) Draw(dst render.Surface) {
	for _, pt := range p.particles {
		fade := clamp(pt.Life/pt.MaxLife, 0, 1)
		dst.FillCircle(pt.X, pt.Y, ParticleRadius, render.WithAlpha(pt.Color, uint8(255*fade)))
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
