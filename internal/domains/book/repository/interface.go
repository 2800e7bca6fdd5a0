package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/book/model"
)

// Repository is the relational data access port for books.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	// List returns a page of books matching the filter, ordered by
	// creation time descending, plus the total count ignoring pagination.
	List(ctx context.Context, filter model.Filter) ([]*model.Book, int, error)
	// ListByAuthorIDs returns each author's books, newest first,
	// for batched Author.books resolution.
	ListByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]*model.Book, error)
	Update(ctx context.Context, id uuid.UUID, patch model.Patch) (*model.Book, error)
}
