package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	authormodel "bookstore-catalog/internal/domains/author/model"
	authorrepo "bookstore-catalog/internal/domains/author/repository"
	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/repository"
	metadataservice "bookstore-catalog/internal/domains/metadata/service"
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/validation"
)

type bookService struct {
	bookRepo   repository.Repository
	authorRepo authorrepo.Repository
	metadata   metadataservice.Service
}

func NewBookService(
	bookRepo repository.Repository,
	authorRepo authorrepo.Repository,
	metadata metadataservice.Service,
) Service {
	return &bookService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		metadata:   metadata,
	}
}

func (s *bookService) CreateBook(ctx context.Context, input model.CreateBookInput) (*model.Book, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: The referenced author must exist
	author, err := s.authorRepo.GetByID(ctx, uuid.MustParse(input.AuthorID))
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, authormodel.NewAuthorNotFound(input.AuthorID)
	}

	// Step 3: Build entity, normalizing published_date when present
	book := &model.Book{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    author.ID,
	}
	if input.PublishedDate != nil {
		published, err := validation.ParseDate(*input.PublishedDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse published_date: %w", err)
		}
		book.PublishedDate = &published
	}

	// Step 4: Persist
	created, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	// Step 5: A cover image materializes the metadata aggregate
	if input.CoverImageURL != nil {
		if _, err := s.metadata.SetCoverImage(ctx, created.ID.String(), input.CoverImageURL); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *bookService) EditBook(ctx context.Context, input model.EditBookInput) (*model.Book, error) {
	// Step 1: Validate input (id required, the rest optional)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id := uuid.MustParse(input.ID)

	// Step 2: The book must exist
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, model.NewBookNotFound(input.ID)
	}

	// Step 3: Build the partial update from explicitly present fields.
	// Only title, description and authorId are editable on the book row;
	// published_date stays out of the edit surface.
	patch := model.Patch{
		Title:       input.Title.Ptr(),
		Description: input.Description,
	}
	if raw, ok := input.AuthorID.Get(); ok {
		newAuthorID := uuid.MustParse(raw)
		if newAuthorID != book.AuthorID {
			author, err := s.authorRepo.GetByID(ctx, newAuthorID)
			if err != nil {
				return nil, err
			}
			if author == nil {
				return nil, authormodel.NewAuthorNotFound(raw)
			}
			patch.AuthorID = &newAuthorID
		}
	}

	// Step 4: Apply
	updated := book
	if !patch.IsEmpty() {
		updated, err = s.bookRepo.Update(ctx, id, patch)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, model.NewBookNotFound(input.ID)
		}
	}

	// Step 5: A present cover_image_url is written to the metadata
	// aggregate, creating it on first use; an explicit null clears it
	if input.CoverImageURL.IsSet() {
		if _, err := s.metadata.SetCoverImage(ctx, input.ID, input.CoverImageURL.Ptr()); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

func (s *bookService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	if err := validation.UUID(&id, "id"); err != nil {
		return nil, err
	}
	// nil for a missing id: absence is a valid query result
	return s.bookRepo.GetByID(ctx, uuid.MustParse(id))
}

func (s *bookService) ListBooks(ctx context.Context, params model.ListBooksParams) (*model.ListResult, error) {
	// Step 1: Validate params
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Defaults
	filter := model.Filter{
		Offset: shared.DefaultOffset,
		Limit:  shared.DefaultLimit,
	}
	if params.Offset != nil {
		filter.Offset = *params.Offset
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	if params.SearchTerm != nil {
		filter.SearchTerm = *params.SearchTerm
	}

	// Step 3: A filter by author requires the author to exist
	if params.AuthorID != nil {
		authorID := uuid.MustParse(*params.AuthorID)
		author, err := s.authorRepo.GetByID(ctx, authorID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, authormodel.NewAuthorNotFound(*params.AuthorID)
		}
		filter.AuthorID = &authorID
	}

	// Step 4: Page + total count
	books, totalCount, err := s.bookRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.ListResult{Books: books, TotalCount: totalCount}, nil
}
