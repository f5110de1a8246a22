package types

import (
	"strings"

	apperrors "github.com/sbeardsley/archive-browser/internal/errors"
)

// ------------------------------
// Input Validation
// ------------------------------
//
// All checks run before any network call and return Validation-kind errors
// that are surfaced to the user immediately.

// ValidateToken checks a filter token (tag or @username) typed or picked by
// the user.
func ValidateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.NewValidationError("filter token must not be empty")
	}
	return nil
}

// ValidateTag checks the batch-tag input text.
func ValidateTag(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return apperrors.NewValidationError("please enter a tag")
	}
	return nil
}

// ValidateUsername checks a tracked-username form value.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return apperrors.NewValidationError("username must not be empty")
	}
	return nil
}

// ValidateVideoIDs checks the id list of a batch operation.
func ValidateVideoIDs(ids []string) error {
	if len(ids) == 0 {
		return apperrors.NewValidationError("no videos selected")
	}
	for _, id := range ids {
		if id == "" {
			return apperrors.NewValidationError("video id must not be empty")
		}
	}
	return nil
}
