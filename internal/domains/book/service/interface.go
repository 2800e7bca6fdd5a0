package service

import (
	"context"

	"bookstore-catalog/internal/domains/book/model"
)

// Service orchestrates book mutations and reads.
type Service interface {
	CreateBook(ctx context.Context, input model.CreateBookInput) (*model.Book, error)
	EditBook(ctx context.Context, input model.EditBookInput) (*model.Book, error)
	// GetBook returns nil for a missing id; absence is a valid query
	// result here, unlike GetAuthor.
	GetBook(ctx context.Context, id string) (*model.Book, error)
	ListBooks(ctx context.Context, params model.ListBooksParams) (*model.ListResult, error)
}
