package browser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
	"github.com/sbeardsley/archive-browser/internal/renderq"
	"github.com/sbeardsley/archive-browser/internal/types"
)

// ClickMod is the modifier held during a card click.
type ClickMod int

const (
	// ModPlain selects only the clicked card.
	ModPlain ClickMod = iota
	// ModRange (shift) selects the run between the last selected card and
	// the clicked one.
	ModRange
	// ModToggle (ctrl/cmd) flips the clicked card's membership.
	ModToggle
)

// ClickTarget identifies what inside a card the click landed on. Nested
// interactive controls never trigger selection.
type ClickTarget int

const (
	// TargetCard is the card surface itself.
	TargetCard ClickTarget = iota
	// TargetDeleteButton is the per-card delete button.
	TargetDeleteButton
	// TargetConfirmOverlay is the delete-confirmation overlay.
	TargetConfirmOverlay
	// TargetTagChip is a tag chip.
	TargetTagChip
)

// Selection tracks the selected video ids, the selection-mode toggle and the
// range-select anchor, and runs the batch operations against the selected
// cards. It persists across page loads; it is cleared on mode exit and on a
// successful batch delete.
type Selection struct {
	client   *Client
	grid     *GridModel
	queue    *renderq.Queue
	notifier Notifier

	mu     sync.Mutex
	active bool
	ids    map[string]struct{}
	last   string // range-select anchor
}

// NewSelection wires a selection controller over the grid.
func NewSelection(client *Client, grid *GridModel, queue *renderq.Queue, notifier Notifier) *Selection {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Selection{
		client:   client,
		grid:     grid,
		queue:    queue,
		notifier: notifier,
		ids:      make(map[string]struct{}),
	}
}

// Active reports whether selection mode is on.
func (s *Selection) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// ToggleMode flips selection mode and returns the new state. Leaving the
// mode always empties the selection and strips every visual mark.
func (s *Selection) ToggleMode() bool {
	s.mu.Lock()
	s.active = !s.active
	active := s.active
	if !active {
		s.ids = make(map[string]struct{})
		s.last = ""
	}
	s.mu.Unlock()
	if !active {
		s.grid.ClearMarks()
	}
	return active
}

// Click applies one card click. Clicks outside selection mode, or landing on
// a nested control, do nothing.
func (s *Selection) Click(id string, target ClickTarget, mod ClickMod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active || target != TargetCard {
		return
	}

	switch {
	case mod == ModRange && s.last != "":
		s.selectRangeLocked(id)
	case mod == ModToggle:
		s.toggleLocked(id)
	default:
		// Plain click, or a range click with no anchor yet.
		s.selectOnlyLocked(id)
	}
}

// selectRangeLocked selects the contiguous run of rendered cards between the
// anchor and id, inclusive, in grid order. Cards outside the run keep their
// state; the anchor does not move.
func (s *Selection) selectRangeLocked(id string) {
	lastIdx := s.grid.IndexOf(s.last)
	curIdx := s.grid.IndexOf(id)
	if lastIdx < 0 || curIdx < 0 {
		s.selectOnlyLocked(id)
		return
	}
	if lastIdx > curIdx {
		lastIdx, curIdx = curIdx, lastIdx
	}
	ids := s.grid.IDs()
	for i := lastIdx; i <= curIdx; i++ {
		s.ids[ids[i]] = struct{}{}
		s.grid.SetMark(ids[i], true)
	}
}

func (s *Selection) toggleLocked(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		s.grid.SetMark(id, false)
		return
	}
	s.ids[id] = struct{}{}
	s.grid.SetMark(id, true)
	s.last = id
}

func (s *Selection) selectOnlyLocked(id string) {
	s.ids = map[string]struct{}{id: {}}
	s.grid.ClearMarks()
	s.grid.SetMark(id, true)
	s.last = id
}

// SelectAllVisible adds every rendered card to the selection.
func (s *Selection) SelectAllVisible() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	for _, id := range s.grid.IDs() {
		s.ids[id] = struct{}{}
		s.grid.SetMark(id, true)
	}
}

// Count reports the number of selected videos.
func (s *Selection) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IsSelected reports membership of one id.
func (s *Selection) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Selected returns the selected ids in sorted order.
func (s *Selection) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *Selection) sortedLocked() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DeleteSelected deletes every selected video. An empty selection is
// reported to the user without touching the network. On success the cards
// fade out of the grid (queued, non-blocking) and the selection is left
// empty; on failure the grid and the selection stay exactly as they were
// and the server's message is surfaced.
func (s *Selection) DeleteSelected(ctx context.Context) error {
	s.mu.Lock()
	ids := s.sortedLocked()
	s.mu.Unlock()

	if len(ids) == 0 {
		err := apperrors.NewValidationError("no videos selected")
		s.notifier.Notify(err.UserMessage())
		return err
	}

	resp, err := s.client.BulkDelete(ctx, ids)
	if err != nil {
		batchOps.WithLabelValues("delete", "error").Inc()
		s.surface("error deleting videos", err)
		return err
	}
	batchOps.WithLabelValues("delete", "ok").Inc()

	s.mu.Lock()
	for _, id := range ids {
		delete(s.ids, id)
	}
	if _, ok := s.ids[s.last]; !ok {
		s.last = ""
	}
	s.mu.Unlock()

	s.fadeRemove(ctx, ids)
	if resp.Summary != "" {
		s.notifier.Notify(resp.Summary)
	}
	return nil
}

// DeleteOne deletes a single card via its delete button, outside any
// selection. It reuses the bulk endpoint with one id.
func (s *Selection) DeleteOne(ctx context.Context, id string) error {
	if _, err := s.client.BulkDelete(ctx, []string{id}); err != nil {
		s.surface("error deleting video", err)
		return err
	}
	s.mu.Lock()
	delete(s.ids, id)
	if s.last == id {
		s.last = ""
	}
	s.mu.Unlock()
	s.fadeRemove(ctx, []string{id})
	return nil
}

// ApplyTag adds one tag to every selected video. Blank tag text and an
// empty selection are validation errors; the selection survives a
// successful call.
func (s *Selection) ApplyTag(ctx context.Context, tag string) error {
	s.mu.Lock()
	ids := s.sortedLocked()
	s.mu.Unlock()

	if err := types.ValidateTag(tag); err != nil {
		s.surface("", err)
		return err
	}
	if len(ids) == 0 {
		err := apperrors.NewValidationError("no videos selected")
		s.notifier.Notify(err.UserMessage())
		return err
	}

	if _, err := s.client.BulkTag(ctx, ids, tag); err != nil {
		batchOps.WithLabelValues("tag", "error").Inc()
		s.surface("error adding tags", err)
		return err
	}
	batchOps.WithLabelValues("tag", "ok").Inc()

	if err := s.queue.Submit(ctx, renderq.JobFunc(func(context.Context) error {
		for _, id := range ids {
			s.grid.AppendChip(id, tag)
		}
		return nil
	})); err != nil {
		log.Warn().Err(err).Msg("selection: chip submit failed")
	}
	s.notifier.Notify(fmt.Sprintf("Tag %q added to %d videos", tag, len(ids)))
	return nil
}

// Cancel empties the selection and exits selection mode in one step.
func (s *Selection) Cancel() {
	s.mu.Lock()
	s.ids = make(map[string]struct{})
	s.last = ""
	s.active = false
	s.mu.Unlock()
	s.grid.ClearMarks()
}

func (s *Selection) fadeRemove(ctx context.Context, ids []string) {
	if err := s.queue.Submit(ctx, renderq.JobFunc(func(context.Context) error {
		s.grid.Remove(ids...)
		return nil
	})); err != nil {
		log.Warn().Err(err).Msg("selection: remove submit failed")
	}
}

func (s *Selection) surface(prefix string, err error) {
	var e *apperrors.Error
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.UserMessage()
	}
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	s.notifier.Notify(msg)
}
