package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/domains/author/repository"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/validation"
)

type authorService struct {
	authorRepo repository.Repository
}

func NewAuthorService(authorRepo repository.Repository) Service {
	return &authorService{authorRepo: authorRepo}
}

func (s *authorService) CreateAuthor(ctx context.Context, input model.CreateAuthorInput) (*model.Author, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build entity, normalizing born_date when present
	author := &model.Author{
		ID:        uuid.New(),
		Name:      input.Name,
		Biography: input.Biography,
	}
	if input.BornDate != nil {
		born, err := validation.ParseDate(*input.BornDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse born_date: %w", err)
		}
		author.BornDate = &born
	}

	// Step 3: Persist
	created, err := s.authorRepo.Create(ctx, author)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *authorService) EditAuthor(ctx context.Context, input model.EditAuthorInput) (*model.Author, error) {
	// Step 1: Validate input (id required, the rest optional)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id := uuid.MustParse(input.ID)

	// Step 2: The author must exist
	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, model.NewAuthorNotFound(input.ID)
	}

	// Step 3: Build the partial update from explicitly present fields only
	patch := model.Patch{
		Name:      input.Name.Ptr(),
		Biography: input.Biography,
	}
	if input.BornDate.IsNull() {
		patch.BornDate = shared.Null[time.Time]()
	} else if raw, ok := input.BornDate.Get(); ok {
		born, err := validation.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse born_date: %w", err)
		}
		patch.BornDate = shared.Some(born)
	}

	// An input carrying only the id changes nothing
	if patch.IsEmpty() {
		return author, nil
	}

	// Step 4: Apply
	updated, err := s.authorRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.NewAuthorNotFound(input.ID)
	}
	return updated, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id string) (*model.Author, error) {
	if err := validation.UUID(&id, "id"); err != nil {
		return nil, err
	}

	author, err := s.authorRepo.GetByID(ctx, uuid.MustParse(id))
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, model.NewAuthorNotFound(id)
	}
	return author, nil
}

func (s *authorService) ListAuthors(ctx context.Context) ([]*model.Author, error) {
	return s.authorRepo.List(ctx)
}
