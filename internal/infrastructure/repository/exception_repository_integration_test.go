package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
	"github.com/courtdata/judicial-sync/internal/infrastructure/repository"
)

const createExceptionsTableSQL = `
CREATE TABLE IF NOT EXISTS ingestion_exceptions (
  id BIGSERIAL PRIMARY KEY,
  scheduler_name VARCHAR(128) NOT NULL,
  scheduler_start_time TIMESTAMPTZ NOT NULL,
  row_id VARCHAR(64),
  table_name VARCHAR(64),
  field_in_error VARCHAR(64),
  key VARCHAR(256),
  error_description TEXT,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to connect db: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestExceptionInsertAndCountIntegration(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()

	if _, err := pool.Exec(ctx, createExceptionsTableSQL); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM ingestion_exceptions WHERE scheduler_name = 'exception-count-test'"); err != nil {
		t.Fatalf("failed to cleanup: %v", err)
	}

	repo := repository.NewExceptionRepository(pool)
	runStart := time.Now().UTC().Truncate(time.Second)

	entries := []domain.ExceptionEntry{
		{
			SchedulerName:      "exception-count-test",
			SchedulerStartTime: runStart,
			RowID:              "row-1",
			TableName:          "user_profiles",
			FieldInError:       "personal_code",
			Key:                "4925",
			ErrorDescription:   "duplicate key value",
		},
		{
			SchedulerName:      "exception-count-test",
			SchedulerStartTime: runStart,
			RowID:              "row-2",
			TableName:          "judicial_appointments",
			Key:                "4926",
			ErrorDescription:   "invalid start date",
		},
	}
	for _, entry := range entries {
		if err := repo.Insert(ctx, entry); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	count, err := repo.CountForRun(ctx, "exception-count-test", runStart)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 exceptions, got %d", count)
	}

	// A different run start time identifies a different run.
	count, err = repo.CountForRun(ctx, "exception-count-test", runStart.Add(-time.Hour))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 exceptions for another run, got %d", count)
	}
}
