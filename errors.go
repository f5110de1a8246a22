package browser

import (
	"errors"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
	"github.com/sbeardsley/archive-browser/internal/renderq"
)

// ErrBackPressure is returned when the internal render queue is full.
var ErrBackPressure = renderq.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// IsTransportError reports whether err was a network-level or decode
// failure: the request never produced a usable response.
func IsTransportError(err error) bool { return apperrors.IsTransport(err) }

// IsServerError reports whether the backend deliberately rejected the
// request (non-2xx, or a body with success=false).
func IsServerError(err error) bool { return apperrors.IsServer(err) }

// IsValidationError reports whether err was raised by input checks before
// any network call.
func IsValidationError(err error) bool { return apperrors.IsValidation(err) }
