package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/retrogo/internal/config"
	"github.com/udisondev/retrogo/internal/db"
	"github.com/udisondev/retrogo/internal/game"
	"github.com/udisondev/retrogo/internal/loop"
	"github.com/udisondev/retrogo/internal/mobj"
	"github.com/udisondev/retrogo/internal/random"
	"github.com/udisondev/retrogo/internal/sound"
	"github.com/udisondev/retrogo/internal/spawn"
	"github.com/udisondev/retrogo/internal/video"
	"github.com/udisondev/retrogo/internal/video/term"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "", "engine config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	mapName := flag.String("map", "", "map to play")
	record := flag.String("record", "", "record a demo to this file")
	play := flag.String("playdemo", "", "play this demo and exit")
	headless := flag.Bool("headless", false, "run without a terminal display")
	flag.Parse()

	cfg, err := config.LoadEngine(config.Path(*configPath))
	if err != nil {
		return fmt.Errorf("loading engine config: %w", err)
	}
	if *mapName != "" {
		cfg.Map = *mapName
	}
	if *record != "" {
		cfg.Demo.Record = *record
	}
	if *play != "" {
		cfg.Demo.Play = *play
	}
	if *headless {
		cfg.Video.Headless = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	})))
	mobj.EnableDebugLogging(cfg.Debug || logLevel == slog.LevelDebug)

	slog.Info("retrogo starting",
		"map", cfg.Map,
		"skill", cfg.Game.Skill,
		"placements", cfg.PlacementSource,
		"headless", cfg.Video.Headless)

	levels := spawn.NewFileRepository(cfg.LevelDir)
	var things spawn.ThingRepository = levels
	if cfg.PlacementSource == config.SourceDB {
		database, err := db.Open(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("opening map database: %w", err)
		}
		defer database.Close()
		things = database.Things()
		slog.Info("placements served from database")
	}

	var gm *game.Game
	var snd mobj.Sound = sound.Nop{}
	if cfg.Sound.Enabled {
		beep := sound.NewBeep(cfg.Sound.SampleRate, cfg.Sound.Volume, func() *mobj.Mobj {
			if gm == nil {
				return nil
			}
			return gm.PlayerMobj()
		})
		if err := beep.Start(); err != nil {
			slog.Warn("sound disabled", "err", err)
		} else {
			defer beep.Close()
			snd = beep
		}
	}

	opts := game.Options{
		Map:        cfg.Map,
		Levels:     levels,
		Things:     things,
		Sim:        cfg.Game.Options(),
		Sound:      snd,
		PageTics:   int(cfg.Demo.PageDuration * mobj.TicRate / time.Second),
		SingleDemo: cfg.Demo.Play != "",
	}
	if cfg.Demo.Record != "" {
		f, err := os.Create(cfg.Demo.Record)
		if err != nil {
			return fmt.Errorf("creating demo file: %w", err)
		}
		defer f.Close()
		opts.Record = f
	}
	if cfg.Demo.Play != "" {
		f, err := os.Open(cfg.Demo.Play)
		if err != nil {
			return fmt.Errorf("opening demo file: %w", err)
		}
		defer f.Close()
		opts.Play = f
	}

	gm, err = game.New(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := gm.Close(); err != nil {
			slog.Error("closing game", "err", err)
		}
	}()

	var display video.Display = &video.Discard{}
	var terminal *term.Terminal
	if !cfg.Video.Headless {
		terminal, err = term.New()
		if err != nil {
			return err
		}
		defer terminal.Close()
		display = terminal
	}

	var lp *loop.Loop
	menu := game.NewMenu(gm, func() { lp.Post(loop.Event{Type: loop.Quit}) })
	lp = loop.New(gm, display, loop.NewRealClock(mobj.TicRate), loop.Config{
		Width:  cfg.Video.Width,
		Height: cfg.Video.Height,
		Wipe:   cfg.Video.Wipe,
		Rand:   random.New(uint64(time.Now().UnixNano())),
	}, menu, gm)
	lp.SetOverlay(menu)

	g, gctx := errgroup.WithContext(ctx)
	inputCtx, stopInput := context.WithCancel(gctx)

	if terminal != nil {
		events := make(chan loop.Event, loop.QueueSize)
		lp.SetInput(events)
		g.Go(func() error {
			return terminal.Listen(inputCtx, events)
		})
	}

	g.Go(func() error {
		defer stopInput()
		err := lp.Run(gctx)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, game.ErrDemoEnded):
			return nil
		case err != nil:
			return fmt.Errorf("frame loop: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("retrogo stopped", "gametic", lp.GameTic(), "frames", lp.Frames())
	return nil
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
