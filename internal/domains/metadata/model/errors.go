package model

import "bookstore-catalog/internal/shared/apperr"

// NewDuplicateReview reports the one-review-per-user-per-book rule.
func NewDuplicateReview(username string) *apperr.ConflictError {
	return apperr.NewConflict("User %s has already reviewed this book", username)
}
