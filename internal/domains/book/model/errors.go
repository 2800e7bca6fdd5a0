package model

import "bookstore-catalog/internal/shared/apperr"

func NewBookNotFound(id string) *apperr.NotFoundError {
	return apperr.NewNotFound("Book", id)
}
