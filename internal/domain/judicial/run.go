package judicial

import "time"

type RunStatus string

const (
	RunInProgress     RunStatus = "IN_PROGRESS"
	RunSuccess        RunStatus = "SUCCESS"
	RunPartialSuccess RunStatus = "PARTIAL_SUCCESS"
	RunFailed         RunStatus = "FAILED"
)

// SchedulerRun is one audited execution of the ingestion pipeline.
// EndTime stays nil until the run finalizes; a nil EndTime on the most
// recent run tells the next run that ingestion did not complete.
type SchedulerRun struct {
	ID            int64
	SchedulerName string
	APIName       string
	StartTime     time.Time
	EndTime       *time.Time
	Status        RunStatus
}

// Watermark returns the changed-since timestamp the next run should fetch
// from: the end time when the run completed, otherwise its start time.
func (r SchedulerRun) Watermark() time.Time {
	if r.EndTime != nil {
		return *r.EndTime
	}
	return r.StartTime
}

// RunAccumulator collects per-run totals as pages are reconciled. It is a
// plain value threaded through the orchestrator, not shared state.
type RunAccumulator struct {
	RecordsProcessed    int
	RecordsFailed       int
	ExceptionsRecorded  int
	AppointmentsSkipped int
	PagesFetched        int
}

func (a *RunAccumulator) AddPage(outcome PageOutcome) {
	a.RecordsProcessed += outcome.RecordsProcessed
	a.RecordsFailed += outcome.RecordsFailed
	a.ExceptionsRecorded += outcome.ExceptionsRecorded
	a.AppointmentsSkipped += outcome.AppointmentsSkipped
}

// FinalStatus computes the terminal run status: SUCCESS when no exception
// was recorded, PARTIAL_SUCCESS when at least one record landed alongside
// failures, FAILED when nothing succeeded.
func (a RunAccumulator) FinalStatus() RunStatus {
	succeeded := a.RecordsProcessed - a.RecordsFailed
	switch {
	case a.ExceptionsRecorded == 0:
		// An empty but well-formed feed is still a clean run.
		return RunSuccess
	case succeeded > 0:
		return RunPartialSuccess
	default:
		return RunFailed
	}
}

// PageOutcome is the per-page reconciliation tally rolled up into the
// accumulator. RecordsFailed counts records with at least one failed step;
// ExceptionsRecorded counts individual step failures.
type PageOutcome struct {
	RecordsProcessed    int
	RecordsFailed       int
	ExceptionsRecorded  int
	AppointmentsSkipped int
}
