package judicial

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

// PageFetcherConfig tunes the throttling backoff. Pause applies to the
// first wait after a 429, RetriggerPause to every wait after that so
// resumed fetches do not hammer the feed in lockstep. MaxRetries caps how
// often one page is re-issued; zero means no ceiling.
type PageFetcherConfig struct {
	PageSize        int
	IncludeInactive bool
	Pause           time.Duration
	RetriggerPause  time.Duration
	MaxRetries      int
}

// PageFetcher fetches one feed page at a time, absorbing 429 responses
// with a pause-and-retry of the same page. Terminal statuses surface as a
// FeedStatusError classified per status code.
type PageFetcher struct {
	client domain.FeedClient
	cfg    PageFetcherConfig
	log    *zap.Logger
}

func NewPageFetcher(client domain.FeedClient, cfg PageFetcherConfig, log *zap.Logger) *PageFetcher {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	if cfg.Pause <= 0 {
		cfg.Pause = 2 * time.Second
	}
	if cfg.RetriggerPause <= 0 {
		cfg.RetriggerPause = time.Second
	}

	return &PageFetcher{client: client, cfg: cfg, log: log}
}

// Fetch returns the raw body for a page, retrying through throttling.
// Transport failures come back wrapped as domain.ErrFeedUnavailable.
func (f *PageFetcher) Fetch(ctx context.Context, page int, changedSince time.Time) ([]byte, error) {
	retries := 0

	for {
		body, status, err := f.client.FetchPage(ctx, page, f.cfg.PageSize, changedSince, f.cfg.IncludeInactive)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		switch ClassifyStatus(status) {
		case FetchDone:
			return body, nil
		case FetchRetry:
			if f.cfg.MaxRetries > 0 && retries >= f.cfg.MaxRetries {
				return nil, fmt.Errorf("page %d: retry limit %d exhausted: %w",
					page, f.cfg.MaxRetries, domain.NewFeedStatusError(status))
			}

			pause := f.cfg.Pause
			if retries > 0 {
				pause = f.cfg.RetriggerPause
			}
			retries++

			f.log.Warn("people feed throttled, pausing before retry",
				zap.Int("page", page),
				zap.Int("retry", retries),
				zap.Duration("pause", pause))

			if !sleepWithContext(ctx, pause) {
				return nil, ctx.Err()
			}
		default:
			return nil, fmt.Errorf("page %d: %w", page, domain.NewFeedStatusError(status))
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
