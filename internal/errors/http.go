package errors

import "fmt"

// NewHTTPError creates a Server error for a non-2xx response.
func NewHTTPError(statusCode int, body string, operation string) *Error {
	return &Error{
		Kind:       Server,
		StatusCode: statusCode,
		Message:    body,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewServerError creates a Server error for a 2xx response whose body
// reported success=false.
func NewServerError(operation, message string) *Error {
	if message == "" {
		message = "unknown error"
	}
	return &Error{
		Kind:       Server,
		Message:    message,
		Underlying: fmt.Errorf("%s rejected by server", operation),
	}
}

// NewNetworkError creates a Transport error for a network-level failure.
func NewNetworkError(operation string, err error) *Error {
	return &Error{
		Kind:       Transport,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

// NewDecodeError creates a Transport error for a response body that could
// not be parsed.
func NewDecodeError(operation string, err error) *Error {
	return &Error{
		Kind:       Transport,
		Underlying: fmt.Errorf("%s decode error: %w", operation, err),
	}
}

// NewValidationError creates a Validation error. The message is shown to the
// user verbatim.
func NewValidationError(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}
