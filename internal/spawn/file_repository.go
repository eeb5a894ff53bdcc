package spawn

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/udisondev/retrogo/internal/mapdata"
)

// LevelRepository serves placements from levels already loaded into memory,
// keyed by level name.
type LevelRepository struct {
	levels map[string]*mapdata.Level
}

// NewLevelRepository creates a LevelRepository adapter.
func NewLevelRepository(levels ...*mapdata.Level) *LevelRepository {
	r := &LevelRepository{levels: make(map[string]*mapdata.Level, len(levels))}
	for _, lv := range levels {
		r.levels[lv.Name] = lv
	}
	return r
}

// LoadThings returns the placements of the named level.
func (r *LevelRepository) LoadThings(ctx context.Context, mapName string) ([]mapdata.Thing, error) {
	lv, err := r.LoadLevel(ctx, mapName)
	if err != nil {
		return nil, err
	}
	return lv.Things, nil
}

// LoadLevel returns the named level.
func (r *LevelRepository) LoadLevel(_ context.Context, mapName string) (*mapdata.Level, error) {
	lv, ok := r.levels[mapName]
	if !ok {
		return nil, fmt.Errorf("level %q not found", mapName)
	}
	return lv, nil
}

// FileRepository reads placements straight from YAML level files in a
// directory, one file per map named <map>.yaml.
type FileRepository struct {
	dir string
}

// NewFileRepository creates a FileRepository over dir.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// LoadThings parses <dir>/<mapName>.yaml and returns its placements.
func (r *FileRepository) LoadThings(ctx context.Context, mapName string) ([]mapdata.Thing, error) {
	lv, err := r.LoadLevel(ctx, mapName)
	if err != nil {
		return nil, err
	}
	return lv.Things, nil
}

// LoadLevel parses <dir>/<mapName>.yaml.
func (r *FileRepository) LoadLevel(_ context.Context, mapName string) (*mapdata.Level, error) {
	return mapdata.LoadFile(r.Path(mapName))
}

// Path returns the level file path for mapName.
func (r *FileRepository) Path(mapName string) string {
	return filepath.Join(r.dir, mapName+".yaml")
}
