// Package audio plays short synthesized cues for shell events.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
)

// ErrDisabled is returned by Open when audio is turned off in config
var ErrDisabled = errors.New("audio disabled")

const defaultSampleRate = 44100

// Cue names a sound the shell can play
type Cue int

const (
	CueScene Cue = iota
	CueMove
	CueSelect
	CueTheme
	CueFire
)

func (c Cue) String() string {
	switch c {
	case CueScene:
		return "scene"
	case CueMove:
		return "move"
	case CueSelect:
		return "select"
	case CueTheme:
		return "theme"
	case CueFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Tones maps each cue to its blip
var Tones = map[Cue]Tone{
	CueScene:  {Freq: 330, Duration: 120 * time.Millisecond, Wave: WaveSine, Release: 60 * time.Millisecond},
	CueMove:   {Freq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare, Release: 20 * time.Millisecond},
	CueSelect: {Freq: 880, Duration: 80 * time.Millisecond, Wave: WaveSine, Release: 40 * time.Millisecond},
	CueTheme:  {Freq: 520, Duration: 200 * time.Millisecond, Wave: WaveSine, Release: 120 * time.Millisecond},
	CueFire:   {Freq: 180, Duration: 60 * time.Millisecond, Wave: WaveSaw, Release: 30 * time.Millisecond},
}

// CuePlayer mixes cues into the speaker. Before Open succeeds it only
// counts what would have played.
type CuePlayer struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	open   bool
	played map[Cue]int
	logger logging.Logger
}

// New creates a player for cfg. A zero sample rate falls back to 44.1kHz.
func New(cfg config.AudioConfig, logger logging.Logger) *CuePlayer {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = defaultSampleRate
	}
	return &CuePlayer{
		cfg:    cfg,
		rate:   beep.SampleRate(rate),
		mixer:  &beep.Mixer{},
		played: make(map[Cue]int),
		logger: logger,
	}
}

// Open initializes the speaker and starts the mixer
func (p *CuePlayer) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled {
		return ErrDisabled
	}
	if p.open {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.open = true
	p.logger.Infof("audio", "speaker open at %d Hz", int(p.rate))
	return nil
}

// Close stops every playing cue
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.open = false
}

// Stream builds the streamer for c at the configured rate and volume
func (p *CuePlayer) Stream(c Cue) beep.Streamer {
	return Synth(Tones[c], p.rate, p.cfg.Volume)
}

// Play queues c on the mixer
func (p *CuePlayer) Play(c Cue) {
	if _, ok := Tones[c]; !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[c]++
	if !p.open {
		return
	}
	s := p.Stream(c)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times c was requested
func (p *CuePlayer) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Attach plays a cue for each shell event on bus
func (p *CuePlayer) Attach(bus *event.Bus) {
	event.Subscribe(bus, event.SceneChangedEvent, func(event.SceneChanged) { p.Play(CueScene) })
	event.Subscribe(bus, event.MenuMovedEvent, func(event.MenuMoved) { p.Play(CueMove) })
	event.Subscribe(bus, event.MenuSelectedEvent, func(event.MenuSelected) { p.Play(CueSelect) })
	event.Subscribe(bus, event.ThemeChangedEvent, func(event.ThemeChanged) { p.Play(CueTheme) })
	event.Subscribe(bus, event.ShotFiredEvent, func(event.ShotFired) { p.Play(CueFire) })
}
