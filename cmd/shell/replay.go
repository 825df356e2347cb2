package main

import (
	"fmt"
	"io"

	"github.com/younwookim/retroshell/internal/application/replay"
	"github.com/younwookim/retroshell/internal/application/shell"
	"github.com/younwookim/retroshell/internal/infrastructure/config"
	"github.com/younwookim/retroshell/internal/infrastructure/logging"
	"github.com/younwookim/retroshell/internal/infrastructure/render"
)

// runReplay rebuilds the shell with the recording's seed and home, feeds
// every recorded frame through it without a window and reports where it
// ended up.
func runReplay(cfg config.ShellConfig, path string, out io.Writer, logger logging.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	cfg.Seed = data.Seed
	if data.Home != "" {
		cfg.Home = data.Home
	}
	sh, err := shell.Build(cfg, render.DefaultFont(), logger)
	if err != nil {
		return err
	}

	r := replay.NewReplayer(*data)
	for !sh.Quitting() {
		dt, events, ok := r.Next()
		if !ok {
			break
		}
		sh.Step(dt, events)
	}

	_, err = fmt.Fprintf(out, "frames: %d/%d\nscene: %s\nhistory: %v\nquit: %t\n",
		r.CurrentFrame(), r.TotalFrames(), sh.Scenes.CurrentKey(), sh.Scenes.History(), sh.Quitting())
	return err
}
