package renderq

import "time"

// Config tunes the queue. Zero values get sane defaults in New.
type Config struct {
	// QueueSize bounds the number of pending jobs before Submit reports
	// backpressure.
	QueueSize int

	// EnqueueTimeout is how long Submit waits for space before giving up
	// with a QueueFullError.
	EnqueueTimeout time.Duration

	// ErrorHandler, when set, receives errors returned by jobs. Jobs are
	// never retried; a failed mutation is reported and dropped.
	ErrorHandler func(error)
}
