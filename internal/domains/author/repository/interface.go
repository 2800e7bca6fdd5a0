package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author/model"
)

// Repository is the relational data access port for authors.
// Lookups return (nil, nil) when no row matches; "missing" is a domain
// decision made by the services, not a storage error.
type Repository interface {
	Create(ctx context.Context, author *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	// GetByIDs returns the found authors keyed by id; absent ids are
	// simply missing from the map.
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.Author, error)
	// List returns all authors ordered by creation time descending.
	List(ctx context.Context) ([]*model.Author, error)
	Update(ctx context.Context, id uuid.UUID, patch model.Patch) (*model.Author, error)
}
