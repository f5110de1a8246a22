package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
	"github.com/sbeardsley/archive-browser/internal/types"
)

// QueueStats fetches the processing-queue counters and recent activity.
func QueueStats(ctx context.Context, httpClient *http.Client, baseURL string) (*types.QueueStatsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/queue-stats", nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewNetworkError("queue stats", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewHTTPError(resp.StatusCode, string(body), "queue stats")
	}

	var qr types.QueueStatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, apperrors.NewDecodeError("queue stats", err)
	}
	if !qr.Success {
		return nil, apperrors.NewServerError("queue stats", qr.Error)
	}
	return &qr, nil
}
