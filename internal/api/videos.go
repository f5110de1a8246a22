// Package api implements one function per backend endpoint. Functions are
// stateless: the caller supplies the http.Client and base URL so the facade
// can wrap transports (request ids, debug dumps) without this package
// knowing about it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
	"github.com/sbeardsley/archive-browser/internal/types"
)

// ListVideos fetches one page of videos. filters and filterType serialize
// the active filter set; when filters is empty, filter_type is omitted
// entirely so an unfiltered request stays `?page=N&per_page=M`.
func ListVideos(ctx context.Context, httpClient *http.Client, baseURL string, page, perPage int, filters []string, filterType string) (*types.VideosPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	if len(filters) > 0 {
		for _, f := range filters {
			params.Add("filters[]", f)
		}
		params.Set("filter_type", filterType)
	}
	u := fmt.Sprintf("%s/api/videos?%s", baseURL, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewNetworkError("list videos", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewHTTPError(resp.StatusCode, string(body), "list videos")
	}

	var pageResp types.VideosPage
	if err := json.NewDecoder(resp.Body).Decode(&pageResp); err != nil {
		return nil, apperrors.NewDecodeError("list videos", err)
	}
	return &pageResp, nil
}

// BulkDelete removes the given videos. The backend reports per-call success
// in the body, so a 200 with success=false is still an error.
func BulkDelete(ctx context.Context, httpClient *http.Client, baseURL string, videoIDs []string) (*types.BulkResponse, error) {
	if err := types.ValidateVideoIDs(videoIDs); err != nil {
		return nil, err
	}
	return postBulk(ctx, httpClient, baseURL, "/api/videos/bulk-delete", "bulk delete",
		types.BulkDeleteRequest{VideoIDs: videoIDs})
}

// BulkTag adds one tag to the given videos.
func BulkTag(ctx context.Context, httpClient *http.Client, baseURL string, videoIDs []string, tag string) (*types.BulkResponse, error) {
	if err := types.ValidateVideoIDs(videoIDs); err != nil {
		return nil, err
	}
	if err := types.ValidateTag(tag); err != nil {
		return nil, err
	}
	return postBulk(ctx, httpClient, baseURL, "/api/videos/bulk-tag", "bulk tag",
		types.BulkTagRequest{VideoIDs: videoIDs, Tag: tag})
}

func postBulk(ctx context.Context, httpClient *http.Client, baseURL, path, operation string, payload any) (*types.BulkResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewHTTPError(resp.StatusCode, string(respBody), operation)
	}

	var br types.BulkResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return nil, apperrors.NewDecodeError(operation, err)
	}
	if !br.Success {
		return nil, apperrors.NewServerError(operation, br.Error)
	}
	return &br, nil
}
