package service

import (
	"context"

	"bookstore-catalog/internal/domains/metadata/model"
)

// Service orchestrates writes to the BookMetadata aggregate.
type Service interface {
	// AddReview appends a review and recomputes the average rating.
	// Fails with NotFound when the book does not exist and with Conflict
	// when the username already reviewed it.
	AddReview(ctx context.Context, input model.ReviewInput) (*model.BookMetadata, error)
	// GetByBookID returns nil for a book with no metadata yet.
	GetByBookID(ctx context.Context, bookID string) (*model.BookMetadata, error)
	// SetCoverImage stores the cover URL, materializing the aggregate on
	// first use. A nil url clears it.
	SetCoverImage(ctx context.Context, bookID string, url *string) (*model.BookMetadata, error)
}
