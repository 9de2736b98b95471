package judicial_test

import (
	"testing"

	app "github.com/courtdata/judicial-sync/internal/application/judicial"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   app.FetchAction
	}{
		{200, app.FetchDone},
		{201, app.FetchDone},
		{429, app.FetchRetry},
		{400, app.FetchFatal},
		{401, app.FetchFatal},
		{403, app.FetchFatal},
		{404, app.FetchFatal},
		{500, app.FetchFatal},
		{503, app.FetchFatal},
	}

	for _, tc := range cases {
		if got := app.ClassifyStatus(tc.status); got != tc.want {
			t.Fatalf("status %d: expected action %v, got %v", tc.status, tc.want, got)
		}
	}
}
