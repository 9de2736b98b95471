package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

// Client is the people-feed transport. It carries no retry logic: HTTP
// error statuses are data for the caller, only transport-level failures
// become errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchPage(ctx context.Context, page, pageSize int, changedSince time.Time, includeInactive bool) ([]byte, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	query.Set("changedSince", changedSince.UTC().Format("2006-01-02"))
	query.Set("includeInactive", strconv.FormatBool(includeInactive))

	endpoint := c.baseURL + "/people?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build people request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read body: %v", domain.ErrFeedUnavailable, err)
	}

	return body, resp.StatusCode, nil
}
