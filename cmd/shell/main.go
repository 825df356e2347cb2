package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/retroshell/internal/application/event"
	"github.com/younwookim/retroshell/internal/application/game"
	"github.com/younwookim/retroshell/internal/application/replay"
	"github.com/younwookim/retroshell/internal/application/shell"
	"github.com/younwookim/retroshell/internal/application/system"
	"github.com/younwookim/retroshell/internal/infrastructure/audio"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
	"github.com/younwookim/retroshell/internal/infrastructure/terminal"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Directory holding shell.json (default: embedded config)")
	term := flag.Bool("term", false, "Run in the terminal instead of a window")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and print the final scene")
	themeFlag := flag.String("theme", "", "Override the starting theme")
	flag.Parse()

	logger := logging.Default()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	if *replayFlag != "" {
		if err := runReplay(*cfg, *replayFlag, os.Stdout, logger); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	player := audio.New(cfg.Audio, logger)
	if err := player.Open(); err != nil {
		if errors.Is(err, audio.ErrDisabled) {
			logger.Infof("audio", "disabled in config")
		} else {
			logger.Warnf("audio", "running without sound: %v", err)
		}
	}
	defer player.Close()

	opts := []shell.Option{shell.WithSubscriber(func(b *event.Bus) { player.Attach(b) })}
	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(cfg.Seed, cfg.Home)
		opts = append(opts, shell.WithRecorder(recorder))
		log.Printf("Recording enabled: %s (seed: %d)", *recordFlag, cfg.Seed)
	}

	font := render.DefaultFont()
	sh, err := shell.Build(*cfg, font, logger, opts...)
	if err != nil {
		log.Fatalf("Failed to build shell: %v", err)
	}

	if *term {
		err = runTerminal(sh, cfg.Display.Framerate, logger)
	} else {
		err = runWindow(sh, font, cfg.Display)
	}
	if err != nil {
		log.Printf("Shell stopped: %v", err)
	}

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.FrameCount())
		}
	}
}

// loadConfig reads shell.json from dir, or from the embedded configs
func loadConfig(dir string) (*config.ShellConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadShell()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadShell()
}

func runWindow(sh *shell.Shell, font *render.BitmapFont, d config.DisplayConfig) error {
	g := game.New(sh, system.NewInputSystem(), font, d.ScreenWidth, d.ScreenHeight, d.Framerate)

	scale := max(d.Scale, 1)
	ebiten.SetWindowSize(int(float64(d.ScreenWidth)*scale), int(float64(d.ScreenHeight)*scale))
	ebiten.SetWindowTitle("Retro Shell")
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(sh *shell.Shell, fps int, logger logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return terminal.New(screen, sh, fps, logger).Run(ctx)
}
