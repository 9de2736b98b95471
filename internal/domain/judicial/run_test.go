package judicial_test

import (
	"testing"
	"time"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

func TestWatermarkUsesEndTimeWhenRunCompleted(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 10, 2, 0, 0, 0, time.UTC)
	end := start.Add(15 * time.Minute)
	run := domain.SchedulerRun{StartTime: start, EndTime: &end}

	if got := run.Watermark(); !got.Equal(end) {
		t.Fatalf("expected watermark %v, got %v", end, got)
	}
}

func TestWatermarkFallsBackToStartTimeWhenRunIncomplete(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 10, 2, 0, 0, 0, time.UTC)
	run := domain.SchedulerRun{StartTime: start}

	if got := run.Watermark(); !got.Equal(start) {
		t.Fatalf("expected watermark %v, got %v", start, got)
	}
}

func TestFinalStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		acc  domain.RunAccumulator
		want domain.RunStatus
	}{
		{
			name: "no exceptions is success",
			acc:  domain.RunAccumulator{RecordsProcessed: 10},
			want: domain.RunSuccess,
		},
		{
			name: "empty feed is success",
			acc:  domain.RunAccumulator{},
			want: domain.RunSuccess,
		},
		{
			name: "mixed outcome is partial success",
			acc:  domain.RunAccumulator{RecordsProcessed: 10, RecordsFailed: 3, ExceptionsRecorded: 4},
			want: domain.RunPartialSuccess,
		},
		{
			name: "everything failed",
			acc:  domain.RunAccumulator{RecordsProcessed: 2, RecordsFailed: 2, ExceptionsRecorded: 2},
			want: domain.RunFailed,
		},
	}

	for _, tc := range cases {
		if got := tc.acc.FinalStatus(); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}
