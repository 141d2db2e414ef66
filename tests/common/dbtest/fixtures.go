//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedReferenceData inserts the lane catalog the way the application seeds it
// at startup, so tests can run against a populated catalog without starting
// the full app.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO lanes (id, name, capacity)
		SELECT i, 'Lane ' || i, 1 FROM generate_series(1, 6) AS i
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

// ResetDB clears mutable state between subtests. The lane catalog is
// reference data and survives the reset.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `TRUNCATE TABLE reservations, sessions RESTART IDENTITY CASCADE;`)
	return err
}
