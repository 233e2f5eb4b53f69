// Package archive is an optional, write-only sink for pipeline runs,
// adapted from the teacher's server/store package. A run archived here
// is never read back into a later solve: archival is purely for
// external record-keeping (SPEC_FULL.md §3), preserving the core
// pipeline's no-persistent-state invariant.
package archive

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"

	"ordorate/internal/rating"
)

//go:embed schema.sql
var schema embed.FS

// DB wraps a connection pool to the archival database.
type DB struct{ *pgxpool.Pool }

// Open establishes a pool against dsn. It performs no queries itself;
// call Migrate once before first use.
func Open(ctx context.Context, dsn string) (*DB, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close() { db.Pool.Close() }

// Migrate applies the embedded schema; safe to call on every startup,
// every statement is idempotent (CREATE ... IF NOT EXISTS).
func (db *DB) Migrate(ctx context.Context) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// ArchiveReport writes one pipeline run, labeled by the caller, plus
// every reported competitor row. It never reads state back.
func (db *DB) ArchiveReport(ctx context.Context, label string, report *rating.Report) (runID int64, err error) {
	converged := report.NonConverged == nil
	err = db.QueryRow(ctx, `
		INSERT INTO runs(label, white_adv, draw_rate, converged)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, label, report.WhiteAdv, report.DrawRate, converged).Scan(&runID)
	if err != nil {
		return 0, err
	}

	batch := make([][]any, 0, len(report.Competitors))
	for _, row := range report.Competitors {
		batch = append(batch, []any{
			runID, row.Index, row.Name, row.Rating, row.SDev,
			row.Obtained, row.PlayedBy, row.Perf.String(), row.Flagged,
		})
	}
	for _, args := range batch {
		if _, err := db.Exec(ctx, `
			INSERT INTO run_competitors(run_id, idx, name, rating, sdev, obtained, played_by, perf, flagged)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`, args...); err != nil {
			return runID, err
		}
	}
	return runID, nil
}
