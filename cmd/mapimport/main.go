// Command mapimport stores the thing placements of YAML level files in the
// map_things table, so the engine can serve them with
// placement_source: db.
//
// Usage:
//
//	go run ./cmd/mapimport [-config path] [-dir levels] [MAP ...]
//	go run ./cmd/mapimport -list
//
// Without map names every *.yaml file in the level directory is imported.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/udisondev/retrogo/internal/config"
	"github.com/udisondev/retrogo/internal/db"
	"github.com/udisondev/retrogo/internal/spawn"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("mapimport failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "", "engine config file")
	dir := flag.String("dir", "", "level directory (default from config)")
	list := flag.Bool("list", false, "list imported maps and exit")
	flag.Parse()

	cfg, err := config.LoadEngine(config.Path(*configPath))
	if err != nil {
		return fmt.Errorf("loading engine config: %w", err)
	}
	if *dir == "" {
		*dir = cfg.LevelDir
	}

	database, err := db.Open(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("opening map database: %w", err)
	}
	defer database.Close()
	repo := database.Things()

	if *list {
		maps, err := repo.ListMaps(ctx)
		if err != nil {
			return err
		}
		for _, m := range maps {
			fmt.Println(m)
		}
		return nil
	}

	names := flag.Args()
	if len(names) == 0 {
		names, err = levelNames(*dir)
		if err != nil {
			return err
		}
	}

	files := spawn.NewFileRepository(*dir)
	for _, name := range names {
		lv, err := files.LoadLevel(ctx, name)
		if err != nil {
			return err
		}
		if err := repo.ReplaceThings(ctx, name, lv.Things); err != nil {
			return err
		}

		counts, err := repo.CountByType(ctx, name)
		if err != nil {
			return err
		}
		slog.Info("map imported", "map", name, "things", len(lv.Things), "types", len(counts))
	}
	return nil
}

// levelNames returns the map names of the level files in dir, sorted.
func levelNames(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing levels: %w", err)
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(p), ".yaml"))
	}
	slices.Sort(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no level files in %s", dir)
	}
	return names, nil
}
