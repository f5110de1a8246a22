package browser

import (
	"context"
	"net/http"
	"time"

	"github.com/sbeardsley/archive-browser/internal/api"
	"github.com/sbeardsley/archive-browser/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the HTTP facade over the archive backend. It holds no grid or
// selection state; the controllers in this package own that and call down
// through it.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given backend base URL. Additional
// options can be provided via functional arguments; env-derived defaults
// (ARCHIVE_BROWSER_*) are applied first.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	opts = append(optionsFromEnv(), opts...)

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap the transport so every request carries an X-Request-ID, with the
	// debug dumper (when enabled) underneath it.
	c.wrapTransportWithRequestID()

	return c
}

// --------------------------------------------------------------------
// Video operations - delegated to internal/api
// --------------------------------------------------------------------

// ListVideos fetches one page of videos under the given serialized filter
// state. filterType is ignored by the wire encoding when filters is empty.
func (c *Client) ListVideos(ctx context.Context, page, perPage int, filters []string, filterType string) (*types.VideosPage, error) {
	return api.ListVideos(ctx, c.http, c.baseURL, page, perPage, filters, filterType)
}

// BulkDelete deletes the given videos.
func (c *Client) BulkDelete(ctx context.Context, videoIDs []string) (*types.BulkResponse, error) {
	return api.BulkDelete(ctx, c.http, c.baseURL, videoIDs)
}

// BulkTag adds one tag to the given videos.
func (c *Client) BulkTag(ctx context.Context, videoIDs []string, tag string) (*types.BulkResponse, error) {
	return api.BulkTag(ctx, c.http, c.baseURL, videoIDs, tag)
}

// --------------------------------------------------------------------
// Tag operations
// --------------------------------------------------------------------

// SearchTags queries the suggestion endpoint.
func (c *Client) SearchTags(ctx context.Context, query string) ([]string, error) {
	return api.SearchTags(ctx, c.http, c.baseURL, query)
}

// --------------------------------------------------------------------
// Username operations
// --------------------------------------------------------------------

// ListUsernames fetches the tracked usernames.
func (c *Client) ListUsernames(ctx context.Context) ([]string, error) {
	return api.ListUsernames(ctx, c.http, c.baseURL)
}

// AddUsername starts tracking a username.
func (c *Client) AddUsername(ctx context.Context, username string) error {
	return api.AddUsername(ctx, c.http, c.baseURL, username)
}

// DeleteUsername stops tracking a username.
func (c *Client) DeleteUsername(ctx context.Context, username string) error {
	return api.DeleteUsername(ctx, c.http, c.baseURL, username)
}

// --------------------------------------------------------------------
// Queue operations
// --------------------------------------------------------------------

// QueueStats fetches processing-queue counters and recent activity.
func (c *Client) QueueStats(ctx context.Context) (*types.QueueStatsResponse, error) {
	return api.QueueStats(ctx, c.http, c.baseURL)
}
