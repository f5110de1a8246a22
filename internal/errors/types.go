// Package errors provides error classification for the browser SDK.
// This lets callers decide how to surface a failure: page-load errors are
// logged only, errors from user-initiated mutations are shown to the user,
// and validation errors never reach the network at all.
package errors

import (
	"errors"
	"fmt"
)

// Kind partitions SDK errors by where they originate.
type Kind int

const (
	// Transport covers network-level and decode failures: the request never
	// produced a usable response.
	Transport Kind = iota

	// Server covers responses the backend produced deliberately: a non-2xx
	// status, or a 2xx body carrying success=false with an error message.
	Server

	// Validation covers input rejected before any network call (blank tag
	// text, empty selection, blank username).
	Validation
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Transport:
		return "Transport"
	case Server:
		return "Server"
	case Validation:
		return "Validation"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error wraps a failure with classification metadata.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Message    string // server-provided message, when there is one
	Underlying error  // the original error, nil for pure server rejections
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Kind, e.StatusCode, e.Underlying)
	case e.Message != "":
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	default:
		return fmt.Sprintf("[%s] %v", e.Kind, e.Underlying)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// UserMessage returns the text suitable for a user-facing notification.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Underlying != nil {
		return e.Underlying.Error()
	}
	return "unknown error"
}

func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool { k, ok := kindOf(err); return ok && k == Transport }

// IsServer reports whether err is a deliberate backend rejection.
func IsServer(err error) bool { k, ok := kindOf(err); return ok && k == Server }

// IsValidation reports whether err was raised before any network call.
func IsValidation(err error) bool { k, ok := kindOf(err); return ok && k == Validation }
