package browser

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sbeardsley/archive-browser/internal/types"
)

// Mode is the combinator applied across active filter tokens. Exactly one
// mode is in effect at a time; the legacy UI modeled OR and NOT as two
// independent checkboxes, which allowed contradictory states.
type Mode int

const (
	// ModeAnd matches videos carrying every active token.
	ModeAnd Mode = iota
	// ModeOr matches videos carrying at least one active token.
	ModeOr
	// ModeNot matches videos carrying none of the active tokens.
	ModeNot
)

// String returns the wire value used in the filter_type query parameter.
func (m Mode) String() string {
	switch m {
	case ModeAnd:
		return "and"
	case ModeOr:
		return "or"
	case ModeNot:
		return "not"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func validMode(m Mode) bool { return m == ModeAnd || m == ModeOr || m == ModeNot }

// resetter is the pagination side of a filter mutation; every change to the
// set restarts paging from scratch.
type resetter interface {
	Reset(ctx context.Context) error
}

// FilterSet holds the active filter tokens and the combinator mode. Tokens
// beginning with "@" are username filters, everything else is a content tag.
// Tokens are matched exactly as received; no normalization.
type FilterSet struct {
	mu     sync.Mutex
	tokens map[string]struct{}
	mode   Mode
	pager  resetter
}

// NewFilterSet returns an empty set in ModeAnd.
func NewFilterSet() *FilterSet {
	return &FilterSet{tokens: make(map[string]struct{})}
}

// bind wires the pager whose state is rebuilt on every mutation.
func (f *FilterSet) bind(p resetter) {
	f.mu.Lock()
	f.pager = p
	f.mu.Unlock()
}

// Add inserts a token and restarts paging. Adding a token that is already
// present still triggers the reset, matching the idempotent contract.
func (f *FilterSet) Add(ctx context.Context, token string) error {
	if err := types.ValidateToken(token); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	f.mu.Lock()
	f.tokens[token] = struct{}{}
	p := f.pager
	f.mu.Unlock()
	return f.reset(ctx, p)
}

// Remove drops a token if present and restarts paging either way.
func (f *FilterSet) Remove(ctx context.Context, token string) error {
	f.mu.Lock()
	delete(f.tokens, token)
	p := f.pager
	f.mu.Unlock()
	return f.reset(ctx, p)
}

// SetMode switches the combinator and restarts paging.
func (f *FilterSet) SetMode(ctx context.Context, m Mode) error {
	if !validMode(m) {
		return fmt.Errorf("invalid filter mode %d", int(m))
	}
	f.mu.Lock()
	f.mode = m
	p := f.pager
	f.mu.Unlock()
	return f.reset(ctx, p)
}

func (f *FilterSet) reset(ctx context.Context, p resetter) error {
	if p == nil {
		return nil
	}
	return p.Reset(ctx)
}

// Mode returns the current combinator.
func (f *FilterSet) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Contains reports whether a token is active.
func (f *FilterSet) Contains(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tokens[token]
	return ok
}

// Len reports the number of active tokens.
func (f *FilterSet) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tokens)
}

// Snapshot returns the active tokens in sorted order plus the mode. Sorting
// keeps the query encoding deterministic; insertion order carries no meaning.
func (f *FilterSet) Snapshot() ([]string, Mode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokens := make([]string, 0, len(f.tokens))
	for t := range f.tokens {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens, f.mode
}
