package renderq

import (
	"errors"
	"fmt"
)

// ErrQueueClosed is returned by Submit after Stop.
var ErrQueueClosed = errors.New("renderq: queue closed")

// ErrQueueFull is the sentinel wrapped by QueueFullError so callers can use
// errors.Is without caring about the details.
var ErrQueueFull = errors.New("renderq: queue full")

// QueueFullError reports backpressure: the queue had no space within the
// enqueue timeout.
type QueueFullError struct {
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("renderq: queue full (%d/%d)", e.Length, e.Capacity)
}

func (e *QueueFullError) Unwrap() error { return ErrQueueFull }
