// Package shell assembles the registries, managers and built-in content
// into a runnable shell and exposes the per-frame step every host shares.
package shell

import (
	"fmt"

	"github.com/younwookim/retroshell/internal/application/content"
	"github.com/younwookim/retroshell/internal/application/content/layers"
	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/input"
	"github.com/younwookim/retroshell/internal/application/layer"
	"github.com/younwookim/retroshell/internal/application/plugin"
	"github.com/younwookim/retroshell/internal/application/registry"
	"github.com/younwookim/retroshell/internal/application/replay"
	"github.com/younwookim/retroshell/internal/application/scene"
	"github.com/younwookim/retroshell/internal/application/transition"
	"github.com/younwookim/retroshell/internal/domain/theme"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

type options struct {
	instant  bool
	plugins  []plugin.Plugin
	recorder *replay.Recorder
	attach   []func(*event.Bus)
}

// Option customizes Build
type Option func(*options)

// WithoutTransitions makes every scene change instant
func WithoutTransitions() Option {
	return func(o *options) { o.instant = true }
}

// WithPlugins adds plugins discovered after the built-in content
func WithPlugins(p ...plugin.Plugin) Option {
	return func(o *options) { o.plugins = append(o.plugins, p...) }
}

// WithRecorder records every step into rec
func WithRecorder(rec *replay.Recorder) Option {
	return func(o *options) { o.recorder = rec }
}

// WithSubscriber hands the bus to fn once it exists, e.g. to attach audio
func WithSubscriber(fn func(*event.Bus)) Option {
	return func(o *options) { o.attach = append(o.attach, fn) }
}

// Shell is a fully wired shell
type Shell struct {
	Plugins *plugin.Plugins
	Layers  *layer.Manager
	Scenes  *scene.Manager
	Input   *input.Manager
	Bus     *event.Bus
	Runtime *config.Runtime

	recorder *replay.Recorder
	frames   int
	quit     bool
	logger   logging.Logger
}

// Build validates cfg, discovers the built-in content, constructs every
// registered scene and enters the home scene.
func Build(cfg config.ShellConfig, font render.Font, logger logging.Logger, opts ...Option) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Shell{
		Plugins:  plugin.New(logger),
		Layers:   layer.NewManager(),
		Input:    input.NewManager(logger),
		Bus:      event.NewBus(),
		recorder: o.recorder,
		logger:   logger,
	}

	var transitions *registry.Table[transition.Factory]
	if !o.instant {
		transitions = s.Plugins.Transitions
	}
	s.Scenes = scene.NewManager(transitions, s.Bus, logger)

	svc := layers.Services{Navigator: s.Scenes, Bus: s.Bus, Quit: s.RequestQuit}
	plugin.Discover(s.Plugins, logger, append(content.All(svc), o.plugins...)...)

	s.Runtime = config.NewRuntime(cfg, s.startTheme(cfg.Theme))

	env := &plugin.Env{
		Deps: scene.Deps{
			Layers:  s.Layers,
			Table:   s.Plugins.Layers,
			Effects: s.Plugins.Effects,
			Font:    font,
			Runtime: s.Runtime,
			Logger:  logger,
		},
		Navigator: s.Scenes,
		Bus:       s.Bus,
		PlayModes: s.Plugins.PlayModes,
		Themes:    s.Plugins.Themes,
		Quit:      s.RequestQuit,
	}
	for _, key := range s.Plugins.Scenes.Keys() {
		e, _ := s.Plugins.Scenes.Lookup(key)
		sc := e.Factory(env)
		if sc == nil {
			logger.Warnf("shell", "scene factory %q returned nil, skipping", key)
			continue
		}
		s.Scenes.AddScene(key, sc)
	}

	s.Input.Register(s.Scenes)
	s.Input.SetGlobalKeyNames(s.Runtime.GlobalKeys())

	home := cfg.Home
	if home == "" {
		home = scene.DefaultHome
	}
	if _, ok := s.Scenes.Scene(home); !ok {
		return nil, fmt.Errorf("home scene %q is not registered", home)
	}
	s.Scenes.SetDefaultTransition(cfg.Transition.Kind, cfg.Transition.Duration)
	s.Scenes.SetHome(home)

	for _, fn := range o.attach {
		fn(s.Bus)
	}

	s.Scenes.SetScene(home)
	s.Bus.Flush()
	logger.Infof("shell", "ready: %d scenes, home %q", s.Plugins.Scenes.Len(), home)
	return s, nil
}

func (s *Shell) startTheme(name string) theme.Theme {
	if e, ok := s.Plugins.Themes.Lookup(name); ok {
		return e.Factory()
	}
	s.logger.Warnf("shell", "unknown theme %q, using default", name)
	return theme.Default()
}

// Step runs one frame: runtime clocks, input, scene update, then event
// delivery.
func (s *Shell) Step(dt float64, events []input.Event) {
	if s.recorder != nil {
		s.recorder.RecordFrame(dt, events)
	}
	s.Runtime.Advance(dt)
	s.Input.ProcessAll(events)
	s.Scenes.Update(dt)
	s.Bus.Flush()
	s.frames++
}

// Draw renders the current scene or transition
func (s *Shell) Draw(dst render.Surface) {
	s.Scenes.Draw(dst)
}

// Resize updates the runtime scale for a new screen size
func (s *Shell) Resize(w, h int) {
	if w == s.Runtime.ScreenWidth() && h == s.Runtime.ScreenHeight() {
		return
	}
	s.Runtime.UpdateDimensions(w, h)
}

// RequestQuit marks the shell as finished. Hosts stop after the frame.
func (s *Shell) RequestQuit() {
	if !s.quit {
		s.logger.Infof("shell", "quit requested after %d frames", s.frames)
	}
	s.quit = true
}

func (s *Shell) Quitting() bool             { return s.quit }
func (s *Shell) Frames() int                { return s.frames }
func (s *Shell) Recorder() *replay.Recorder { return s.recorder }
