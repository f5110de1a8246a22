package browser

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sbeardsley/archive-browser/internal/renderq"
	"github.com/sbeardsley/archive-browser/internal/types"
)

// pageSize is fixed; the backend default matches and the UI exposes no knob.
const pageSize = 20

// Pager owns pagination state: current page index, the loaded-video
// accumulator, the has-more flag and the in-flight guard. At most one page
// fetch is outstanding at any time; LoadNextPage while a fetch is in flight
// is a no-op, which also makes repeated scroll triggers idempotent.
type Pager struct {
	client  *Client
	filters *FilterSet
	grid    Renderer
	queue   *renderq.Queue

	mu      sync.Mutex
	page    int // -1 until the first page lands
	loaded  []types.VideoRecord
	hasMore bool
	loading bool
	gen     uint64
}

// NewPager wires a pager to its collaborators. The filter set is bound back
// so that every mutation restarts paging.
func NewPager(client *Client, filters *FilterSet, grid Renderer, queue *renderq.Queue) *Pager {
	p := &Pager{
		client:  client,
		filters: filters,
		grid:    grid,
		queue:   queue,
		page:    -1,
		hasMore: true,
	}
	filters.bind(p)
	return p
}

// LoadNextPage fetches the next page under the current filter set and hands
// the new records (only the new ones) to the renderer. It is a no-op while a
// fetch is in flight or when the last page has been reached. Fetch failures
// leave state untouched apart from releasing the guard; the UI degrades to
// "no further pages" and the error goes to the diagnostic log only.
func (p *Pager) LoadNextPage(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	gen := p.gen
	next := p.page + 1
	p.mu.Unlock()

	filters, mode := p.filters.Snapshot()
	page, err := p.client.ListVideos(ctx, next, pageSize, filters, mode.String())

	p.mu.Lock()
	if gen != p.gen {
		// A reset happened while this fetch was outstanding. Discard the
		// response and run the load the reset deferred to us.
		p.loading = false
		p.mu.Unlock()
		stalePagesDiscarded.Inc()
		log.Debug().Int("page", next).Msg("pager: discarding stale page response")
		return p.LoadNextPage(ctx)
	}
	defer func() {
		p.loading = false
		p.mu.Unlock()
	}()

	if err != nil {
		pageLoadFailures.Inc()
		log.Warn().Err(err).Int("page", next).Msg("pager: page load failed")
		return err
	}
	if len(page.Videos) == 0 {
		p.hasMore = false
		return nil
	}

	p.page = next
	p.loaded = append(p.loaded, page.Videos...)
	p.hasMore = page.HasMore
	pagesLoaded.Inc()
	videosLoaded.Add(float64(len(page.Videos)))

	cards := make([]Card, len(page.Videos))
	for i, v := range page.Videos {
		cards[i] = BuildCard(v)
	}
	if qerr := p.queue.Submit(ctx, renderq.JobFunc(func(context.Context) error {
		p.grid.Append(cards)
		return nil
	})); qerr != nil {
		log.Warn().Err(qerr).Msg("pager: render submit failed")
	}
	return nil
}

// Reset clears the accumulator, rewinds to page -1, clears the rendered
// grid and loads the first page of the new filter state. A fetch that is
// still outstanding is not cancelled; its response fails the generation
// check and is discarded, and the discard path reissues this load.
func (p *Pager) Reset(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	p.page = -1
	p.loaded = nil
	p.hasMore = true
	inFlight := p.loading
	p.mu.Unlock()

	if err := p.queue.Submit(ctx, renderq.JobFunc(func(context.Context) error {
		p.grid.Clear()
		return nil
	})); err != nil {
		log.Warn().Err(err).Msg("pager: clear submit failed")
	}

	if inFlight {
		// The stale completion will start the fresh load.
		return nil
	}
	return p.LoadNextPage(ctx)
}

// Loading reports whether a page fetch is in flight.
func (p *Pager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// HasMore reports whether the server indicated further pages.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Page returns the index of the last successfully loaded page, -1 before
// the first load.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Loaded returns a snapshot of every record accumulated since the last
// reset.
func (p *Pager) Loaded() []types.VideoRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]types.VideoRecord, len(p.loaded))
	copy(out, p.loaded)
	return out
}
