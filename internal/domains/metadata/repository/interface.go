package repository

import (
	"context"

	"bookstore-catalog/internal/domains/metadata/model"
)

// Repository is the document data access port for BookMetadata
// aggregates. A missing document is (nil, nil): "not yet created", never
// corruption.
type Repository interface {
	FindByBookID(ctx context.Context, bookID string) (*model.BookMetadata, error)
	// FindByBookIDs returns found aggregates keyed by bookId for batched
	// Book.metadata resolution; absent ids are missing from the map.
	FindByBookIDs(ctx context.Context, bookIDs []string) (map[string]*model.BookMetadata, error)
	Create(ctx context.Context, meta *model.BookMetadata) (*model.BookMetadata, error)
	// Save persists the whole aggregate; reviews are loaded and written
	// as a unit with their parent.
	Save(ctx context.Context, meta *model.BookMetadata) (*model.BookMetadata, error)
}
