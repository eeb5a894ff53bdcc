// Package spawn loads map placements from a repository and spawns them
// into a level.
package spawn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/retrogo/internal/mapdata"
	"github.com/udisondev/retrogo/internal/mobj"
)

var ErrNotLoaded = errors.New("placements not loaded")

// ThingRepository loads the placements of one map.
type ThingRepository interface {
	LoadThings(ctx context.Context, mapName string) ([]mapdata.Thing, error)
}

// Manager spawns the placements of a map and remembers which mobj each
// placement produced.
type Manager struct {
	repo  ThingRepository
	level *mobj.Level

	mapName string
	things  []mapdata.Thing
	spawned []mobj.Handle // by placement index, zero when filtered out
	loaded  bool
}

// NewManager creates new spawn manager
func NewManager(repo ThingRepository, level *mobj.Level) *Manager {
	return &Manager{
		repo:  repo,
		level: level,
	}
}

// LoadSpawns loads the placements of mapName from the repository
func (m *Manager) LoadSpawns(ctx context.Context, mapName string) error {
	things, err := m.repo.LoadThings(ctx, mapName)
	if err != nil {
		return fmt.Errorf("loading placements for %s: %w", mapName, err)
	}

	m.mapName = mapName
	m.things = things
	m.spawned = make([]mobj.Handle, len(things))
	m.loaded = true

	slog.Info("placements loaded", "map", mapName, "count", len(things))
	return nil
}

// SpawnAll spawns every loaded placement in file order and returns the
// number of mobjs created. Placements filtered out by skill or options
// produce nothing and are not errors.
func (m *Manager) SpawnAll() (int, error) {
	if !m.loaded {
		return 0, ErrNotLoaded
	}

	count := 0
	for i, th := range m.things {
		mo := m.level.SpawnMapThing(th, i)
		if mo == nil {
			continue
		}
		m.spawned[i] = mo.Handle()
		count++
	}

	slog.Info("placements spawned",
		"map", m.mapName,
		"spawned", count,
		"skipped", len(m.things)-count,
		"monsters", m.level.Stats.TotalKills,
		"items", m.level.Stats.TotalItems)
	return count, nil
}

// Spawned returns the live mobj created for placement index i, or nil if
// the placement was skipped or its mobj has since been removed.
func (m *Manager) Spawned(i int) *mobj.Mobj {
	if i < 0 || i >= len(m.spawned) || m.spawned[i].IsZero() {
		return nil
	}
	return m.level.Resolve(m.spawned[i])
}

// Things returns the loaded placements.
func (m *Manager) Things() []mapdata.Thing {
	return m.things
}

// ThingCount returns the number of loaded placements
func (m *Manager) ThingCount() int {
	return len(m.things)
}

// AliveCount returns how many spawned placements still have a live mobj.
func (m *Manager) AliveCount() int {
	n := 0
	for i := range m.spawned {
		if m.Spawned(i) != nil {
			n++
		}
	}
	return n
}
