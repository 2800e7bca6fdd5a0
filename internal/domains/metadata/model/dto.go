package model

import "bookstore-catalog/internal/shared/validation"

// Field limits
const (
	MaxUsernameLength = 50
	MaxCommentLength  = 1000
)

// ReviewInput - Mutation.addReview
type ReviewInput struct {
	BookID   string
	Username string
	Rating   int
	Comment  *string
}

// Validate applies the rules in field-declaration order, failing fast.
func (in ReviewInput) Validate() error {
	if err := validation.Required(in.BookID, "bookId"); err != nil {
		return err
	}
	if err := validation.UUID(&in.BookID, "bookId"); err != nil {
		return err
	}
	if err := validation.Required(in.Username, "username"); err != nil {
		return err
	}
	if err := validation.String(&in.Username, "username", validation.StringOptions{
		MinLength: 1,
		MaxLength: MaxUsernameLength,
		Trim:      true,
	}); err != nil {
		return err
	}
	if err := validation.Required(in.Rating, "rating"); err != nil {
		return err
	}
	if err := validation.Rating(&in.Rating, "rating"); err != nil {
		return err
	}
	return validation.String(in.Comment, "comment", validation.StringOptions{
		MaxLength: MaxCommentLength,
	})
}
