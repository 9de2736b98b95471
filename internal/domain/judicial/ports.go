package judicial

import (
	"context"
	"time"
)

// FeedClient is the upstream people-feed transport. It returns the raw
// page body together with the HTTP status; interpreting the status is the
// caller's concern. The error is non-nil only for transport-level
// failures (wrapped ErrFeedUnavailable).
type FeedClient interface {
	FetchPage(ctx context.Context, page, pageSize int, changedSince time.Time, includeInactive bool) ([]byte, int, error)
}

type ProfileStore interface {
	Upsert(ctx context.Context, profile UserProfile) error
}

type AppointmentStore interface {
	DeleteByPersonalCode(ctx context.Context, personalCode string) error
	Insert(ctx context.Context, personalCode string, appointment ResolvedAppointment) error
}

type AuthorisationStore interface {
	DeleteByPersonalCode(ctx context.Context, personalCode string) error
	Insert(ctx context.Context, personalCode string, authorisation AuthorisationRecord) error
}

type RoleStore interface {
	DeleteByPersonalCode(ctx context.Context, personalCode string) error
	Insert(ctx context.Context, personalCode string, role RoleRecord) error
}

// LocationLookup resolves reference data for appointments. A miss returns
// an empty id and a nil error; errors are reserved for store connectivity.
type LocationLookup interface {
	RegionIDByDescription(ctx context.Context, description string) (string, error)
	ParentBaseLocationID(ctx context.Context, baseLocationID string) (string, error)
	EpimmsIDForLocation(ctx context.Context, location string) (string, error)
}

// RunAuditStore brackets a run with one scheduler_runs row.
type RunAuditStore interface {
	StartRun(ctx context.Context, schedulerName, apiName string, startTime time.Time) (int64, error)
	CompleteRun(ctx context.Context, runID int64, endTime time.Time, status RunStatus) error
	// LatestRun returns the most recent run for the api, or nil when the
	// api has never run.
	LatestRun(ctx context.Context, apiName string) (*SchedulerRun, error)
}

type ExceptionStore interface {
	Insert(ctx context.Context, entry ExceptionEntry) error
}

type PersonQueryStore interface {
	GetByPersonalCode(ctx context.Context, personalCode string) (*UserProfile, error)
}
