package browser

import "sync"

// Renderer receives new cards from the pager. Append gets only the records
// of the page that just arrived, never the full accumulated list.
type Renderer interface {
	Append(cards []Card)
	Clear()
}

// GridModel is the in-memory stand-in for the rendered video grid: an
// ordered card list (grid order == document order) plus per-card selection
// marks. Mutations arrive through the render queue, so no mutation ever
// observes another half-applied; the mutex only protects readers.
type GridModel struct {
	mu     sync.Mutex
	cards  []Card
	marked map[string]bool
}

// NewGridModel returns an empty grid.
func NewGridModel() *GridModel {
	return &GridModel{marked: make(map[string]bool)}
}

// Append implements Renderer.
func (g *GridModel) Append(cards []Card) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cards = append(g.cards, cards...)
}

// Clear implements Renderer. Selection marks go with the cards.
func (g *GridModel) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cards = nil
	g.marked = make(map[string]bool)
}

// Cards returns a snapshot of the grid in order.
func (g *GridModel) Cards() []Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// IDs returns the rendered video ids in grid order.
func (g *GridModel) IDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make([]string, len(g.cards))
	for i, c := range g.cards {
		ids[i] = c.VideoID
	}
	return ids
}

// Len reports the number of rendered cards.
func (g *GridModel) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.cards)
}

// IndexOf returns the grid position of a card, or -1.
func (g *GridModel) IndexOf(id string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, c := range g.cards {
		if c.VideoID == id {
			return i
		}
	}
	return -1
}

// Remove drops the given cards and their marks.
func (g *GridModel) Remove(ids ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
		delete(g.marked, id)
	}
	kept := g.cards[:0]
	for _, c := range g.cards {
		if !drop[c.VideoID] {
			kept = append(kept, c)
		}
	}
	g.cards = kept
}

// AppendChip adds a tag chip to one card, mirroring a successful bulk-tag.
func (g *GridModel) AppendChip(id, tag string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cards {
		if g.cards[i].VideoID == id {
			g.cards[i].Chips = append(g.cards[i].Chips, Chip{Label: tag, Token: tag})
			return
		}
	}
}

// SetMark toggles the visual selection mark of one card.
func (g *GridModel) SetMark(id string, on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if on {
		g.marked[id] = true
	} else {
		delete(g.marked, id)
	}
}

// ClearMarks removes every selection mark.
func (g *GridModel) ClearMarks() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.marked = make(map[string]bool)
}

// Marked reports whether a card carries the selection mark.
func (g *GridModel) Marked(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.marked[id]
}

// MarkedCount reports how many cards carry the selection mark.
func (g *GridModel) MarkedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.marked)
}
