package judicial

import "time"

// ExceptionEntry is one row-level ingestion failure, keyed by the run that
// produced it. Append-only; recording one never aborts the run.
type ExceptionEntry struct {
	SchedulerName      string
	SchedulerStartTime time.Time
	RowID              string
	TableName          string
	FieldInError       string
	Key                string
	ErrorDescription   string
}
