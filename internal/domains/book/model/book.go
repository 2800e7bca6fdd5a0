package model

import (
	"time"

	"github.com/google/uuid"

	"bookstore-catalog/internal/shared"
)

// Book is the relational-store entity. AuthorID must reference an
// existing author at write time; the services enforce this, not the
// store. Metadata (reviews, cover image) lives in the document store
// keyed by this book's id, with no enforced foreign key.
type Book struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   *string    `json:"description" db:"description"`
	PublishedDate *time.Time `json:"published_date" db:"published_date"`
	AuthorID      uuid.UUID  `json:"authorId" db:"author_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Patch carries a partial update. Only title, description and authorId
// are editable on the book row; published_date is not part of the edit
// surface, and cover_image_url routes to the metadata document.
type Patch struct {
	Title       *string
	Description shared.Optional[string]
	AuthorID    *uuid.UUID
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && !p.Description.IsSet() && p.AuthorID == nil
}

// Filter narrows a book listing. SearchTerm matches title or description
// case-insensitively.
type Filter struct {
	SearchTerm string
	AuthorID   *uuid.UUID
	Offset     int
	Limit      int
}

// ListResult pairs a page of books with the total count matching the
// filter regardless of pagination.
type ListResult struct {
	Books      []*Book `json:"books"`
	TotalCount int     `json:"totalCount"`
}
