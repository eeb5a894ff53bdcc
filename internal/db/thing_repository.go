package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/retrogo/internal/mapdata"
)

var ErrMapNotFound = errors.New("map not found")

// ThingRepository handles map placement storage
type ThingRepository struct {
	pool *pgxpool.Pool
}

// NewThingRepository creates a new placement repository
func NewThingRepository(pool *pgxpool.Pool) *ThingRepository {
	return &ThingRepository{pool: pool}
}

// LoadThings loads the placements of one map in placement order.
// Returns ErrMapNotFound when the map has no rows.
func (r *ThingRepository) LoadThings(ctx context.Context, mapName string) ([]mapdata.Thing, error) {
	query := `
		SELECT x, y, angle, type, options
		FROM map_things
		WHERE map_name = $1
		ORDER BY idx
	`

	rows, err := r.pool.Query(ctx, query, mapName)
	if err != nil {
		return nil, fmt.Errorf("loading placements of %s: %w", mapName, err)
	}
	defer rows.Close()

	things := make([]mapdata.Thing, 0, 128)
	for rows.Next() {
		var th mapdata.Thing
		if err := rows.Scan(&th.X, &th.Y, &th.Angle, &th.Type, &th.Options); err != nil {
			return nil, fmt.Errorf("scanning placement row: %w", err)
		}
		things = append(things, th)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating placement rows: %w", err)
	}

	if len(things) == 0 {
		return nil, fmt.Errorf("%s: %w", mapName, ErrMapNotFound)
	}
	return things, nil
}

// ReplaceThings atomically replaces every placement of a map.
func (r *ThingRepository) ReplaceThings(ctx context.Context, mapName string, things []mapdata.Thing) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM map_things WHERE map_name = $1`, mapName); err != nil {
		return fmt.Errorf("deleting placements of %s: %w", mapName, err)
	}

	rows := make([][]any, len(things))
	for i, th := range things {
		rows[i] = []any{mapName, int32(i), th.X, th.Y, th.Angle, th.Type, th.Options}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"map_things"},
		[]string{"map_name", "idx", "x", "y", "angle", "type", "options"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copying placements of %s: %w", mapName, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing placements of %s: %w", mapName, err)
	}
	return nil
}

// ListMaps returns the names of maps with stored placements.
func (r *ThingRepository) ListMaps(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT map_name FROM map_things ORDER BY map_name`)
	if err != nil {
		return nil, fmt.Errorf("listing maps: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting map names: %w", err)
	}
	return names, nil
}

// CountByType returns how many placements of map use each editor number.
func (r *ThingRepository) CountByType(ctx context.Context, mapName string) (map[int16]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT type, count(*) FROM map_things WHERE map_name = $1 GROUP BY type`, mapName)
	if err != nil {
		return nil, fmt.Errorf("counting placements of %s: %w", mapName, err)
	}
	defer rows.Close()

	counts := make(map[int16]int)
	for rows.Next() {
		var (
			typ int16
			n   int64
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scanning count row: %w", err)
		}
		counts[typ] = int(n)
	}
	return counts, rows.Err()
}
