package model

import (
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/validation"
)

// Field limits
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 5000
	MaxSearchTermLength  = 100
)

// CreateBookInput - Mutation.createBook
type CreateBookInput struct {
	Title         string
	AuthorID      string
	Description   *string
	PublishedDate *string // ISO-8601 date string
	CoverImageURL *string
}

// Validate applies the rules in field-declaration order, failing fast.
func (in CreateBookInput) Validate() error {
	if err := validation.Required(in.Title, "title"); err != nil {
		return err
	}
	if err := validation.String(&in.Title, "title", validation.StringOptions{
		MinLength: 1,
		MaxLength: MaxTitleLength,
		Trim:      true,
	}); err != nil {
		return err
	}
	if err := validation.Required(in.AuthorID, "authorId"); err != nil {
		return err
	}
	if err := validation.UUID(&in.AuthorID, "authorId"); err != nil {
		return err
	}
	if err := validation.String(in.Description, "description", validation.StringOptions{
		MaxLength: MaxDescriptionLength,
	}); err != nil {
		return err
	}
	if err := validation.Date(in.PublishedDate, "published_date"); err != nil {
		return err
	}
	return validation.URL(in.CoverImageURL, "cover_image_url")
}

// EditBookInput - Mutation.editBook. Fields besides id are three-state.
type EditBookInput struct {
	ID            string
	Title         shared.Optional[string]
	Description   shared.Optional[string]
	AuthorID      shared.Optional[string]
	CoverImageURL shared.Optional[string]
}

func (in EditBookInput) Validate() error {
	if err := validation.Required(in.ID, "id"); err != nil {
		return err
	}
	if err := validation.UUID(&in.ID, "id"); err != nil {
		return err
	}
	if in.Title.IsSet() {
		// title is not clearable
		if err := validation.Required(in.Title.Ptr(), "title"); err != nil {
			return err
		}
		if err := validation.String(in.Title.Ptr(), "title", validation.StringOptions{
			MinLength: 1,
			MaxLength: MaxTitleLength,
			Trim:      true,
		}); err != nil {
			return err
		}
	}
	if err := validation.String(in.Description.Ptr(), "description", validation.StringOptions{
		MaxLength: MaxDescriptionLength,
	}); err != nil {
		return err
	}
	if in.AuthorID.IsSet() {
		// a book always has an author; null is rejected
		if err := validation.Required(in.AuthorID.Ptr(), "authorId"); err != nil {
			return err
		}
		if err := validation.UUID(in.AuthorID.Ptr(), "authorId"); err != nil {
			return err
		}
	}
	return validation.URL(in.CoverImageURL.Ptr(), "cover_image_url")
}

// ListBooksParams - Query.books arguments. All optional; defaults are
// applied by the service after validation.
type ListBooksParams struct {
	Offset     *int
	Limit      *int
	SearchTerm *string
	AuthorID   *string
}

func (p ListBooksParams) Validate() error {
	if err := validation.UUID(p.AuthorID, "authorId"); err != nil {
		return err
	}
	if err := validation.Number(intAsFloat(p.Offset), "offset", validation.NumberOptions{
		Min:     validation.Float(0),
		Integer: true,
	}); err != nil {
		return err
	}
	if err := validation.Number(intAsFloat(p.Limit), "limit", validation.NumberOptions{
		Min:     validation.Float(1),
		Max:     validation.Float(shared.MaxLimit),
		Integer: true,
	}); err != nil {
		return err
	}
	return validation.String(p.SearchTerm, "searchTerm", validation.StringOptions{
		MinLength: 1,
		MaxLength: MaxSearchTermLength,
		Trim:      true,
	})
}

func intAsFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
