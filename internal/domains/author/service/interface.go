package service

import (
	"context"

	"bookstore-catalog/internal/domains/author/model"
)

// Service orchestrates author mutations and reads: validate, resolve
// referenced entities, mutate, return.
type Service interface {
	CreateAuthor(ctx context.Context, input model.CreateAuthorInput) (*model.Author, error)
	EditAuthor(ctx context.Context, input model.EditAuthorInput) (*model.Author, error)
	// GetAuthor fails with a NotFoundError for a missing id. This is
	// deliberately asymmetric with Book lookups, which return nil.
	GetAuthor(ctx context.Context, id string) (*model.Author, error)
	ListAuthors(ctx context.Context) ([]*model.Author, error)
}
