package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

const insertExceptionSQL = `
INSERT INTO ingestion_exceptions
  (scheduler_name, scheduler_start_time, row_id, table_name, field_in_error, key, error_description, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
`

// ExceptionRepository appends row-level ingestion failures. It sits on a
// pgx pool rather than the ORM: the table is append-only and written on
// the hot path of a failing page.
type ExceptionRepository struct {
	pool *pgxpool.Pool
}

func NewExceptionRepository(pool *pgxpool.Pool) *ExceptionRepository {
	return &ExceptionRepository{pool: pool}
}

func (r *ExceptionRepository) Insert(ctx context.Context, entry domain.ExceptionEntry) error {
	_, err := r.pool.Exec(ctx, insertExceptionSQL,
		entry.SchedulerName,
		entry.SchedulerStartTime,
		entry.RowID,
		entry.TableName,
		entry.FieldInError,
		entry.Key,
		entry.ErrorDescription,
	)
	if err != nil {
		return fmt.Errorf("insert exception record for %s: %w", entry.Key, err)
	}
	return nil
}

// CountForRun reports how many exceptions a run produced, identified by
// its scheduler start time.
func (r *ExceptionRepository) CountForRun(ctx context.Context, schedulerName string, startTime time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM ingestion_exceptions WHERE scheduler_name = $1 AND scheduler_start_time = $2",
		schedulerName, startTime,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count exception records: %w", err)
	}
	return count, nil
}
