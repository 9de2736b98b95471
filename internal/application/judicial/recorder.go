package judicial

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

// ExceptionRecorder persists row-level ingestion failures. Recording is
// best-effort: a failure to write the exception row is logged and
// swallowed so it can never abort the caller's loop.
type ExceptionRecorder struct {
	store         domain.ExceptionStore
	schedulerName string
	log           *zap.Logger
}

func NewExceptionRecorder(store domain.ExceptionStore, schedulerName string, log *zap.Logger) *ExceptionRecorder {
	return &ExceptionRecorder{store: store, schedulerName: schedulerName, log: log}
}

func (r *ExceptionRecorder) Record(ctx context.Context, startTime time.Time, rowID, tableName, fieldInError, key, description string) {
	entry := domain.ExceptionEntry{
		SchedulerName:      r.schedulerName,
		SchedulerStartTime: startTime,
		RowID:              rowID,
		TableName:          tableName,
		FieldInError:       fieldInError,
		Key:                key,
		ErrorDescription:   description,
	}

	if err := r.store.Insert(ctx, entry); err != nil {
		r.log.Error("failed to persist exception record",
			zap.String("table", tableName),
			zap.String("key", key),
			zap.String("description", description),
			zap.Error(err))
	}
}
