package judicial

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

type SyncPeopleOutput struct {
	Message            string `json:"message"`
	RecordsProcessed   int    `json:"records_processed"`
	ExceptionsRecorded int    `json:"exceptions_recorded"`
	Status             string `json:"status"`
}

type SyncPeople interface {
	Execute(ctx context.Context) (SyncPeopleOutput, error)
}

type SyncPeopleConfig struct {
	SchedulerName string
	APIName       string
	// DefaultChangedSince is the watermark for a first-ever run, when no
	// prior audit row exists to derive one from.
	DefaultChangedSince time.Time
}

// syncPeople drives the run: compute the delta watermark from the latest
// audited run, fetch and reconcile pages sequentially, and finalize the
// audit row with the aggregated status. Pages are strictly sequential
// because continuation is only known after parsing the current page.
type syncPeople struct {
	fetcher    *PageFetcher
	reconciler *Reconciler
	audits     domain.RunAuditStore
	cfg        SyncPeopleConfig
	now        func() time.Time
	log        *zap.Logger
}

func NewSyncPeople(fetcher *PageFetcher, reconciler *Reconciler, audits domain.RunAuditStore, cfg SyncPeopleConfig, log *zap.Logger) SyncPeople {
	return &syncPeople{
		fetcher:    fetcher,
		reconciler: reconciler,
		audits:     audits,
		cfg:        cfg,
		now:        time.Now,
		log:        log,
	}
}

func (s *syncPeople) Execute(ctx context.Context) (SyncPeopleOutput, error) {
	changedSince, err := s.watermark(ctx)
	if err != nil {
		return SyncPeopleOutput{}, err
	}

	startTime := s.now()
	runID := s.startRun(ctx, startTime)

	s.log.Info("people ingestion started",
		zap.String("scheduler", s.cfg.SchedulerName),
		zap.Time("changed_since", changedSince))

	acc := domain.RunAccumulator{}

	for page := 1; ; page++ {
		body, err := s.fetcher.Fetch(ctx, page, changedSince)
		if err != nil {
			return s.abort(ctx, runID, acc, err)
		}

		parsed, err := ParsePage(body)
		if err != nil {
			return s.abort(ctx, runID, acc, err)
		}

		acc.PagesFetched++
		acc.AddPage(s.reconciler.ReconcilePage(ctx, startTime, parsed))

		if !parsed.Pagination.MorePages {
			break
		}
	}

	status := acc.FinalStatus()
	s.completeRun(ctx, runID, status)

	s.log.Info("people ingestion finished",
		zap.String("status", string(status)),
		zap.Int("pages", acc.PagesFetched),
		zap.Int("records", acc.RecordsProcessed),
		zap.Int("exceptions", acc.ExceptionsRecorded),
		zap.Int("appointments_skipped", acc.AppointmentsSkipped))

	return SyncPeopleOutput{
		Message:            statusMessage(status, acc),
		RecordsProcessed:   acc.RecordsProcessed,
		ExceptionsRecorded: acc.ExceptionsRecorded,
		Status:             string(status),
	}, nil
}

// watermark derives the changed-since timestamp: the end of the latest
// completed run, the start of an unfinished one, or the configured
// default when the api has never run.
func (s *syncPeople) watermark(ctx context.Context) (time.Time, error) {
	latest, err := s.audits.LatestRun(ctx, s.cfg.APIName)
	if err != nil {
		return time.Time{}, fmt.Errorf("query latest scheduler run: %w", err)
	}
	if latest == nil {
		return s.cfg.DefaultChangedSince, nil
	}
	return latest.Watermark(), nil
}

// Audit writes are best-effort: losing the audit row is logged, never
// allowed to fail an otherwise healthy run.
func (s *syncPeople) startRun(ctx context.Context, startTime time.Time) int64 {
	runID, err := s.audits.StartRun(ctx, s.cfg.SchedulerName, s.cfg.APIName, startTime)
	if err != nil {
		s.log.Error("failed to create scheduler run audit row", zap.Error(err))
		return 0
	}
	return runID
}

func (s *syncPeople) completeRun(ctx context.Context, runID int64, status domain.RunStatus) {
	if runID == 0 {
		return
	}
	if err := s.audits.CompleteRun(ctx, runID, s.now(), status); err != nil {
		s.log.Error("failed to finalize scheduler run audit row",
			zap.Int64("run_id", runID),
			zap.String("status", string(status)),
			zap.Error(err))
	}
}

func (s *syncPeople) abort(ctx context.Context, runID int64, acc domain.RunAccumulator, cause error) (SyncPeopleOutput, error) {
	s.completeRun(ctx, runID, domain.RunFailed)

	s.log.Error("people ingestion aborted",
		zap.Int("pages", acc.PagesFetched),
		zap.Int("records", acc.RecordsProcessed),
		zap.Error(cause))

	return SyncPeopleOutput{
		Message:            cause.Error(),
		RecordsProcessed:   acc.RecordsProcessed,
		ExceptionsRecorded: acc.ExceptionsRecorded,
		Status:             string(domain.RunFailed),
	}, cause
}

func statusMessage(status domain.RunStatus, acc domain.RunAccumulator) string {
	switch status {
	case domain.RunPartialSuccess:
		return fmt.Sprintf("people data load completed with %d exception(s)", acc.ExceptionsRecorded)
	case domain.RunFailed:
		return "people data load failed: no record could be stored"
	default:
		return "people data load completed successfully"
	}
}
