package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
	"github.com/sbeardsley/archive-browser/internal/types"
)

// ListUsernames fetches all tracked usernames.
func ListUsernames(ctx context.Context, httpClient *http.Client, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/usernames", nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewNetworkError("list usernames", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewHTTPError(resp.StatusCode, string(body), "list usernames")
	}

	var ur types.UsernamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, apperrors.NewDecodeError("list usernames", err)
	}
	if !ur.Success {
		return nil, apperrors.NewServerError("list usernames", ur.Error)
	}
	return ur.Usernames, nil
}

// AddUsername registers a username for tracking.
func AddUsername(ctx context.Context, httpClient *http.Client, baseURL, username string) error {
	if err := types.ValidateUsername(username); err != nil {
		return err
	}
	return mutateUsername(ctx, httpClient, baseURL, http.MethodPost, "add username", username)
}

// DeleteUsername stops tracking a username. The endpoint takes the username
// in the request body, not the path.
func DeleteUsername(ctx context.Context, httpClient *http.Client, baseURL, username string) error {
	if err := types.ValidateUsername(username); err != nil {
		return err
	}
	return mutateUsername(ctx, httpClient, baseURL, http.MethodDelete, "delete username", username)
}

func mutateUsername(ctx context.Context, httpClient *http.Client, baseURL, method, operation, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(types.UsernameRequest{Username: username})
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, baseURL+"/api/usernames", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apperrors.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewHTTPError(resp.StatusCode, string(respBody), operation)
	}

	var ur types.UsernamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return apperrors.NewDecodeError(operation, err)
	}
	if !ur.Success {
		return apperrors.NewServerError(operation, ur.Error)
	}
	return nil
}
