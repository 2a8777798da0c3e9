// Package playstore is a client for the Play Store review feed and app
// details page. Reviews come from the batchexecute RPC endpoint, paged
// with a continuation token; app details are scraped from the store
// page in a single request. There is no retry: a failed page request
// propagates to the caller.
package playstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"reviewlens/types"
)

const (
	defaultBaseURL   = "https://play.google.com"
	batchexecutePath = "/_/PlayStoreUi/data/batchexecute"
	detailsPath      = "/store/apps/details"

	// maxPageSize is the largest page the source serves.
	maxPageSize = 100

	// MaxBatchSize bounds a single fetch action.
	MaxBatchSize = 1000
)

// Sort orders supported by the review feed.
type Sort int

const (
	SortNewest Sort = 2
	SortRating Sort = 3
)

// ParseSort maps the user-facing sort names onto the feed's codes.
func ParseSort(s string) (Sort, error) {
	switch strings.ToLower(s) {
	case "", "newest":
		return SortNewest, nil
	case "rating":
		return SortRating, nil
	default:
		return 0, fmt.Errorf("unknown sort order %q", s)
	}
}

// ReviewQuery describes one fetch action.
type ReviewQuery struct {
	Count int
	Sort  Sort
	// MinRating/MaxRating form an optional inclusive server-side score
	// filter in [1,5]; zero values disable it.
	MinRating int
	MaxRating int
}

// Validate rejects out-of-range parameters before any network call.
func (q ReviewQuery) Validate() error {
	if q.Count < 1 || q.Count > MaxBatchSize {
		return fmt.Errorf("review count must be in [1,%d], got %d", MaxBatchSize, q.Count)
	}
	if (q.MinRating != 0 || q.MaxRating != 0) &&
		(q.MinRating < 1 || q.MaxRating > 5 || q.MinRating > q.MaxRating) {
		return fmt.Errorf("rating range must satisfy 1 <= min <= max <= 5, got [%d,%d]", q.MinRating, q.MaxRating)
	}
	return nil
}

// Client fetches reviews and app details. The zero value is not usable;
// use NewClient.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	lang         string
	country      string
	pageInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different host (tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithPageInterval sets the minimum pause before each page request
// after the first. The default is 2s, a flat self-throttle against
// upstream rate limiting.
func WithPageInterval(d time.Duration) Option {
	return func(c *Client) { c.pageInterval = d }
}

// WithLocale sets the language and country query parameters.
func WithLocale(lang, country string) Option {
	return func(c *Client) {
		c.lang = lang
		c.country = country
	}
}

// NewClient builds a Play Store client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		lang:         "en",
		country:      "us",
		pageInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reviews fetches up to q.Count review texts for appID, paging through
// the feed with the continuation token the previous page returned. The
// loop stops early, without error, when the source stops returning a
// token. Only the review text survives; every other per-review field is
// discarded. Duplicate reviews across pages are not filtered.
func (c *Client) Reviews(ctx context.Context, appID string, q ReviewQuery) (types.ReviewBatch, error) {
	batch := types.ReviewBatch{ID: uuid.NewString(), AppID: appID}

	if appID == "" {
		return batch, errors.New("app id must not be empty")
	}
	if err := q.Validate(); err != nil {
		return batch, err
	}

	token := ""
	for page := 0; len(batch.Reviews) < q.Count; page++ {
		if page > 0 {
			time.Sleep(c.pageInterval)
		}

		remaining := q.Count - len(batch.Reviews)
		if remaining > maxPageSize {
			remaining = maxPageSize
		}

		texts, next, err := c.fetchPage(ctx, appID, q, remaining, token)
		if err != nil {
			return batch, fmt.Errorf("fetch reviews page: %w", err)
		}

		batch.Reviews = append(batch.Reviews, texts...)
		if next == "" {
			break
		}
		token = next
	}

	return batch, nil
}

func (c *Client) fetchPage(ctx context.Context, appID string, q ReviewQuery, count int, token string) ([]string, string, error) {
	endpoint := fmt.Sprintf("%s%s?hl=%s&gl=%s", c.baseURL, batchexecutePath, c.lang, c.country)
	form := url.Values{"f.req": {buildReviewsPayload(appID, q, count, token)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.New("review source returned status: " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return parseReviewsResponse(body)
}

// AppDetails fetches the app metadata record in a single request.
func (c *Client) AppDetails(ctx context.Context, appID string) (types.AppMetadata, error) {
	var meta types.AppMetadata
	if appID == "" {
		return meta, errors.New("app id must not be empty")
	}

	endpoint := fmt.Sprintf("%s%s?id=%s&hl=%s&gl=%s", c.baseURL, detailsPath, url.QueryEscape(appID), c.lang, c.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return meta, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return meta, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return meta, errors.New("details page returned status: " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return meta, err
	}

	return parseAppDetails(body)
}
