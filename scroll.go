package browser

import "context"

// scrollThreshold is how close to the bottom, in device-independent pixels,
// the viewport must get before the next page loads.
const scrollThreshold = 500

// Viewport is one scroll-event measurement.
type Viewport struct {
	ScrollY        float64
	ViewportHeight float64
	DocumentHeight float64
}

// ScrollTrigger turns scroll positions into page loads. It carries no state
// of its own: the pager's in-flight guard already makes repeated triggers
// idempotent, so no throttling is needed here.
type ScrollTrigger struct {
	pager     *Pager
	threshold float64
}

// NewScrollTrigger returns a trigger with the standard 500px threshold.
func NewScrollTrigger(pager *Pager) *ScrollTrigger {
	return &ScrollTrigger{pager: pager, threshold: scrollThreshold}
}

// OnScroll handles one scroll event. Events during an in-flight load are
// ignored outright.
func (t *ScrollTrigger) OnScroll(ctx context.Context, v Viewport) {
	if t.pager.Loading() {
		return
	}
	distanceFromBottom := v.DocumentHeight - (v.ScrollY + v.ViewportHeight)
	if distanceFromBottom < t.threshold {
		_ = t.pager.LoadNextPage(ctx)
	}
}
