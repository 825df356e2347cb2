package layers

import (
	"math/rand"

	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

const (
	RainDrops     = 50
	RainLength    = 10 // base px
	RainSpeed     = 5  // base px per frame at 60 fps
	Snowflakes    = 100
	SnowDriftStep = 0.05
)

// Drop is one rain streak
type Drop struct {
	X, Y, Length float64
}

// Rain draws falling streaks that wrap from the bottom back to the top
type Rain struct {
	layer.Base
	cfg   *config.Runtime
	drops []Drop
}

// NewRain is the rain_effect factory
func NewRain(_ render.Font, cfg *config.Runtime) layer.Layer {
	if cfg == nil {
		return nil
	}
	rng := newRand(cfg)
	w, h := float64(cfg.ScreenWidth()), float64(cfg.ScreenHeight())

	r := &Rain{Base: layer.Base{Z: layer.ZRainEffect, Persist: true}, cfg: cfg}
	r.drops = make([]Drop, RainDrops)
	for i := range r.drops {
		r.drops[i] = Drop{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			Length: float64(cfg.ScaleValue(RainLength)),
		}
	}
	return r
}

func (r *Rain) Drops() []Drop { return r.drops }

func (r *Rain) Update(dt float64) {
	// speed is scaled on every frame so a resize takes effect immediately
	speed := float64(r.cfg.ScaleValue(RainSpeed)) * 60 * dt
	h := float64(r.cfg.ScreenHeight())
	for i := range r.drops {
		d := &r.drops[i]
		d.Y += speed
		if d.Y > h {
			d.Y = -d.Length
		}
	}
}

func (r *Rain) Draw(dst render.Surface) {
	for _, d := range r.drops {
		dst.Line(d.X, d.Y, d.X, d.Y+d.Length, 1, RainColor)
	}
}

// Flake is one snowflake
type Flake struct {
	X, Y, Size, Speed, Drift float64
}

// Snow drifts flakes down the screen and respawns them at the top
type Snow struct {
	layer.Base
	cfg    *config.Runtime
	rng    *rand.Rand
	flakes []Flake
}

// NewSnow is the snow_effect factory
func NewSnow(_ render.Font, cfg *config.Runtime) layer.Layer {
	if cfg == nil {
		return nil
	}
	s := &Snow{
		Base: layer.Base{Z: layer.ZRainEffect, Persist: true},
		cfg:  cfg,
		rng:  newRand(cfg),
	}
	w, h := float64(cfg.ScreenWidth()), float64(cfg.ScreenHeight())
	s.flakes = make([]Flake, Snowflakes)
	for i := range s.flakes {
		s.flakes[i] = Flake{
			X:     s.rng.Float64() * w,
			Y:     s.rng.Float64() * h,
			Size:  4 + s.rng.Float64()*4,
			Speed: 20 + s.rng.Float64()*20,
			Drift: s.rng.Float64() - 0.5,
		}
	}
	return s
}

func (s *Snow) Flakes() []Flake { return s.flakes }

func (s *Snow) Update(dt float64) {
	w, h := float64(s.cfg.ScreenWidth()), float64(s.cfg.ScreenHeight())
	for i := range s.flakes {
		f := &s.flakes[i]
		f.Y += f.Speed * dt
		f.X += f.Drift * dt
		f.Drift += (s.rng.Float64()*2 - 1) * SnowDriftStep * dt
		f.Drift = max(-1, min(1, f.Drift))

		if f.Y > h {
			f.Y = -f.Size
			f.X = s.rng.Float64() * w
		}
	}
}

func (s *Snow) Draw(dst render.Surface) {
	for _, f := range s.flakes {
		dst.FillCircle(f.X, f.Y, f.Size, SnowColor)
	}
}
