package browser

import (
	"context"
	"strings"
	"sync"
	"time"
)

// defaultDebounce is the trailing debounce applied to suggestion queries.
const defaultDebounce = 300 * time.Millisecond

// Suggester is the debounced client of the tag-search endpoint. A single
// pending timer backs the debounce: new input cancels the previous pending
// query outright, so there is never more than one queued suggestion fetch.
type Suggester struct {
	client   *Client
	filters  *FilterSet
	view     SuggestionView
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewSuggester wires a suggester to the filter set it feeds.
func NewSuggester(client *Client, filters *FilterSet, view SuggestionView) *Suggester {
	if view == nil {
		view = noopSuggestionView{}
	}
	return &Suggester{
		client:   client,
		filters:  filters,
		view:     view,
		debounce: defaultDebounce,
	}
}

// Input handles one change of the filter text box. Empty input hides the
// dropdown immediately without a fetch; anything else shows the loading
// state and schedules a query after the debounce interval.
func (s *Suggester) Input(text string) {
	s.cancelPending()

	if text == "" {
		s.view.Hide()
		return
	}
	query := strings.ToLower(text)
	s.view.ShowLoading()

	s.mu.Lock()
	s.timer = time.AfterFunc(s.debounce, func() { s.fetch(query) })
	s.mu.Unlock()
}

// Accept commits a token: a suggestion picked from the dropdown or free
// text confirmed with Enter. The dropdown closes and the token joins the
// filter set, which restarts paging.
func (s *Suggester) Accept(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	s.cancelPending()
	s.view.Hide()
	return s.filters.Add(ctx, token)
}

// Close cancels any pending query.
func (s *Suggester) Close() {
	s.cancelPending()
}

func (s *Suggester) cancelPending() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
}

func (s *Suggester) fetch(query string) {
	tagQueries.Inc()
	tags, err := s.client.SearchTags(context.Background(), query)
	switch {
	case err != nil:
		s.view.ShowError()
	case len(tags) == 0:
		s.view.ShowEmpty()
	default:
		s.view.ShowTags(tags)
	}
}
