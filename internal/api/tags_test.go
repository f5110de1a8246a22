package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
	"github.com/sbeardsley/archive-browser/internal/types"
)

func TestSearchTags_Success(t *testing.T) {
	t.Parallel()
	var gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode(types.TagSearchResponse{Tags: []string{"cats", "catnip"}})
	}))
	defer srv.Close()

	tags, err := SearchTags(context.Background(), srv.Client(), srv.URL, "cat video")
	if err != nil {
		t.Fatalf("SearchTags: %v", err)
	}
	if gotQ != "cat video" {
		t.Errorf("q = %q, want %q", gotQ, "cat video")
	}
	if len(tags) != 2 || tags[0] != "cats" {
		t.Fatalf("tags = %v", tags)
	}
}

func TestSearchTags_EmptyResult(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.TagSearchResponse{})
	}))
	defer srv.Close()

	tags, err := SearchTags(context.Background(), srv.Client(), srv.URL, "nothing")
	if err != nil {
		t.Fatalf("SearchTags: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("tags = %v, want empty", tags)
	}
}

func TestSearchTags_NonOK(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := SearchTags(context.Background(), srv.Client(), srv.URL, "x"); !apperrors.IsServer(err) {
		t.Fatalf("want Server error, got %v", err)
	}
}

func TestSearchTags_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := SearchTags(context.Background(), hc, "http://example.com", "x"); !apperrors.IsTransport(err) {
		t.Fatalf("want Transport error, got %v", err)
	}
}
