package model

import "bookstore-catalog/internal/shared/apperr"

// NewAuthorNotFound reports a missing author reference with the id the
// caller supplied embedded in the message.
func NewAuthorNotFound(id string) *apperr.NotFoundError {
	return apperr.NewNotFound("Author", id)
}
