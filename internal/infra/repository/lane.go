package repository

import (
	"context"
	"errors"

	"lanebook/internal/domain/lane"
	"lanebook/internal/infra"
	"lanebook/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type LaneRepository struct {
	db db.DBTX
}

func NewLaneRepository(dbtx db.DBTX) *LaneRepository {
	return &LaneRepository{db: dbtx}
}

func (r *LaneRepository) FindByID(ctx context.Context, id int32) (*lane.Lane, error) {
	var (
		name     string
		capacity int32
	)
	err := r.db.QueryRow(ctx,
		`SELECT name, capacity FROM lanes WHERE id = $1`, id,
	).Scan(&name, &capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lane not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lane", err)
	}
	return lane.NewLane(id, name, capacity)
}

func (r *LaneRepository) ExistingIDs(ctx context.Context) (map[int32]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM lanes`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query lane ids", err)
	}
	defer rows.Close()

	ids := make(map[int32]struct{})
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lane id", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lane ids", err)
	}
	return ids, nil
}

// InsertBatch materializes missing catalog lanes in a single round trip.
func (r *LaneRepository) InsertBatch(ctx context.Context, lanes []*lane.Lane) error {
	if len(lanes) == 0 {
		return nil
	}
	ids := make([]int32, len(lanes))
	names := make([]string, len(lanes))
	capacities := make([]int32, len(lanes))
	for i, l := range lanes {
		ids[i] = l.ID()
		names[i] = l.Name()
		capacities[i] = l.Capacity()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO lanes (id, name, capacity)
		 SELECT * FROM unnest($1::int[], $2::text[], $3::int[])
		 ON CONFLICT (id) DO NOTHING`,
		ids, names, capacities,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert lanes", err)
	}
	return nil
}
