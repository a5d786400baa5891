package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ruinworks/ruingen/internal/blueprint"
)

// Store wraps a pgx connection pool for blueprint snapshot operations.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a Store handle.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the database connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Pool returns the underlying pgx pool (for goose migrations).
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

// StoredSnapshotCount returns how many blueprint snapshots the store holds.
// Common ruin scatter is gated on this count.
func (s *Store) StoredSnapshotCount(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM blueprints`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting blueprints: %w", err)
	}
	return n, nil
}

// ListSnapshotIDs returns the ids of all stored blueprints, oldest first.
func (s *Store) ListSnapshotIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT id FROM blueprints ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing blueprints: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning blueprint id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blueprint ids: %w", err)
	}
	return ids, nil
}

// SaveSnapshot stores a blueprint under the given name and returns its id.
// Snapshots are deduplicated by content digest: saving a blueprint that is
// already stored returns the existing id without writing anything.
func (s *Store) SaveSnapshot(ctx context.Context, name string, bp *blueprint.Blueprint) (int64, error) {
	digest := SnapshotDigest(bp)

	var id int64
	err := s.pool.QueryRow(ctx, `SELECT id FROM blueprints WHERE digest = $1`, digest[:]).Scan(&id)
	if err == nil {
		slog.Debug("snapshot already stored", "id", id, "name", name)
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("checking snapshot digest: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("starting snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO blueprints (name, width, height, digest) VALUES ($1, $2, $3, $4) RETURNING id`,
		name, bp.Width(), bp.Height(), digest[:],
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting blueprint %q: %w", name, err)
	}

	batch := &pgx.Batch{}
	for x := 0; x < bp.Width(); x++ {
		for z := 0; z < bp.Height(); z++ {
			wall := bp.CellAt(x, z) == blueprint.CellWall
			terrain := bp.TerrainAt(x, z)
			if wall || terrain != nil {
				var terrainDef *string
				if terrain != nil {
					terrainDef = &terrain.DefName
				}
				batch.Queue(
					`INSERT INTO blueprint_cells (blueprint_id, x, z, wall, terrain_def) VALUES ($1, $2, $3, $4, $5)`,
					id, x, z, wall, terrainDef)
			}
			for _, it := range bp.ItemsAt(x, z) {
				var stuff *string
				if it.StuffDef != "" {
					stuff = &it.StuffDef
				}
				batch.Queue(
					`INSERT INTO blueprint_items (blueprint_id, x, z, def_name, stuff_def, stack_count) VALUES ($1, $2, $3, $4, $5, $6)`,
					id, x, z, it.DefName, stuff, it.StackCount)
			}
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("writing snapshot cells for %q: %w", name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing snapshot %q: %w", name, err)
	}

	slog.Info("snapshot stored", "id", id, "name", name, "width", bp.Width(), "height", bp.Height())
	return id, nil
}

// LoadBlueprint rebuilds a blueprint from its stored snapshot. Room
// segmentation and stats are left to the caller.
func (s *Store) LoadBlueprint(ctx context.Context, id int64) (*blueprint.Blueprint, error) {
	var width, height int
	err := s.pool.QueryRow(ctx,
		`SELECT width, height FROM blueprints WHERE id = $1`, id,
	).Scan(&width, &height)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("blueprint %d: not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying blueprint %d: %w", id, err)
	}

	bp := blueprint.New(width, height)

	cells, err := s.pool.Query(ctx,
		`SELECT x, z, wall, terrain_def FROM blueprint_cells WHERE blueprint_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("querying cells of blueprint %d: %w", id, err)
	}
	defer cells.Close()
	for cells.Next() {
		var x, z int
		var wall bool
		var terrainDef *string
		if err := cells.Scan(&x, &z, &wall, &terrainDef); err != nil {
			return nil, fmt.Errorf("scanning cell of blueprint %d: %w", id, err)
		}
		if wall {
			bp.SetWallAt(x, z)
		}
		if terrainDef != nil {
			bp.SetTerrainAt(x, z, blueprint.TerrainTile{DefName: *terrainDef})
		}
	}
	if err := cells.Err(); err != nil {
		return nil, fmt.Errorf("iterating cells of blueprint %d: %w", id, err)
	}

	items, err := s.pool.Query(ctx,
		`SELECT x, z, def_name, stuff_def, stack_count FROM blueprint_items WHERE blueprint_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("querying items of blueprint %d: %w", id, err)
	}
	defer items.Close()
	for items.Next() {
		var x, z int
		var defName string
		var stuff *string
		var count int32
		if err := items.Scan(&x, &z, &defName, &stuff, &count); err != nil {
			return nil, fmt.Errorf("scanning item of blueprint %d: %w", id, err)
		}
		it := blueprint.ItemTile{DefName: defName, StackCount: count}
		if stuff != nil {
			it.StuffDef = *stuff
		}
		bp.AddItemAt(x, z, it)
	}
	if err := items.Err(); err != nil {
		return nil, fmt.Errorf("iterating items of blueprint %d: %w", id, err)
	}

	return bp, nil
}
