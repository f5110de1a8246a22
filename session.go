package browser

import (
	"context"
	"sync/atomic"

	"github.com/sbeardsley/archive-browser/internal/renderq"
)

// Session wires one video-grid page: filter set, pager, grid model,
// selection controller, suggestion client and scroll trigger, all sharing
// one render queue. It is the Go shape of the page's init code, with the
// window-scoped globals of the legacy UI folded into owned state.
type Session struct {
	Client    *Client
	Filters   *FilterSet
	Grid      *GridModel
	Pager     *Pager
	Selection *Selection
	Suggest   *Suggester
	Scroll    *ScrollTrigger

	queue      *renderq.Queue
	closedOnce uint32 // ensures Close is idempotent
}

// SessionOption configures a Session during construction.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	notifier       Notifier
	suggestionView SuggestionView
	queueSize      int
}

// WithNotifier routes user-facing notifications (batch failures, validation
// messages, summaries) to n.
func WithNotifier(n Notifier) SessionOption {
	return func(c *sessionConfig) { c.notifier = n }
}

// WithSuggestionView renders the tag-suggestion dropdown on v.
func WithSuggestionView(v SuggestionView) SessionOption {
	return func(c *sessionConfig) { c.suggestionView = v }
}

// WithQueueSize bounds the render queue. Mostly a test knob.
func WithQueueSize(n int) SessionOption {
	return func(c *sessionConfig) { c.queueSize = n }
}

// NewSession builds and wires a session around an existing Client.
func NewSession(client *Client, opts ...SessionOption) *Session {
	cfg := sessionConfig{notifier: noopNotifier{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	queue := renderq.New(renderq.Config{QueueSize: cfg.queueSize})
	grid := NewGridModel()
	filters := NewFilterSet()
	pager := NewPager(client, filters, grid, queue)

	return &Session{
		Client:    client,
		Filters:   filters,
		Grid:      grid,
		Pager:     pager,
		Selection: NewSelection(client, grid, queue, cfg.notifier),
		Suggest:   NewSuggester(client, filters, cfg.suggestionView),
		Scroll:    NewScrollTrigger(pager),
		queue:     queue,
	}
}

// Start loads the first page.
func (s *Session) Start(ctx context.Context) error {
	return s.Pager.LoadNextPage(ctx)
}

// Settle blocks until every queued grid mutation submitted so far has been
// applied. Callers use it before reading the grid.
func (s *Session) Settle(ctx context.Context) error {
	return s.queue.Barrier(ctx)
}

// Close stops the render queue and the pending suggestion timer. Safe to
// call multiple times.
func (s *Session) Close() error {
	if !atomic.CompareAndSwapUint32(&s.closedOnce, 0, 1) {
		return nil
	}
	s.Suggest.Close()
	s.queue.Stop()
	return nil
}
