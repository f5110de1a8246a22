package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
	"github.com/sbeardsley/archive-browser/internal/types"
)

// SearchTags queries the tag-suggestion endpoint. Callers are expected to
// debounce; this function issues exactly one request per call.
func SearchTags(ctx context.Context, httpClient *http.Client, baseURL, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/tags/search?q=%s", baseURL, url.QueryEscape(query))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewNetworkError("tag search", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewHTTPError(resp.StatusCode, string(body), "tag search")
	}

	var tr types.TagSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, apperrors.NewDecodeError("tag search", err)
	}
	return tr.Tags, nil
}
