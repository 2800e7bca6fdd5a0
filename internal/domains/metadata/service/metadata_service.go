package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	bookmodel "bookstore-catalog/internal/domains/book/model"
	bookrepo "bookstore-catalog/internal/domains/book/repository"
	"bookstore-catalog/internal/domains/metadata/model"
	"bookstore-catalog/internal/domains/metadata/repository"
)

type metadataService struct {
	metaRepo repository.Repository
	bookRepo bookrepo.Repository
}

func NewMetadataService(metaRepo repository.Repository, bookRepo bookrepo.Repository) Service {
	return &metadataService{
		metaRepo: metaRepo,
		bookRepo: bookRepo,
	}
}

func (s *metadataService) AddReview(ctx context.Context, input model.ReviewInput) (*model.BookMetadata, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: The referenced book must exist in the relational store
	book, err := s.bookRepo.GetByID(ctx, uuid.MustParse(input.BookID))
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, bookmodel.NewBookNotFound(input.BookID)
	}

	// Step 3: Load or lazily create the aggregate
	meta, err := s.getOrCreate(ctx, input.BookID)
	if err != nil {
		return nil, err
	}

	// Step 4: One review per user per book
	if meta.HasReviewBy(input.Username) {
		return nil, model.NewDuplicateReview(input.Username)
	}

	// Step 5: Append and restore the average-rating invariant
	meta.Reviews = append(meta.Reviews, model.Review{
		Username:  input.Username,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	})
	meta.RecomputeAverageRating()

	// Step 6: Persist the whole aggregate
	return s.metaRepo.Save(ctx, meta)
}

func (s *metadataService) GetByBookID(ctx context.Context, bookID string) (*model.BookMetadata, error) {
	return s.metaRepo.FindByBookID(ctx, bookID)
}

func (s *metadataService) SetCoverImage(ctx context.Context, bookID string, url *string) (*model.BookMetadata, error) {
	meta, err := s.getOrCreate(ctx, bookID)
	if err != nil {
		return nil, err
	}
	meta.CoverImageURL = url
	return s.metaRepo.Save(ctx, meta)
}

func (s *metadataService) getOrCreate(ctx context.Context, bookID string) (*model.BookMetadata, error) {
	meta, err := s.metaRepo.FindByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		return meta, nil
	}
	return s.metaRepo.Create(ctx, model.New(bookID))
}
