package model

import (
	"bookstore-catalog/internal/shared"
	"bookstore-catalog/internal/shared/validation"
)

// Field limits
const (
	MaxNameLength      = 255
	MaxBiographyLength = 5000
)

// CreateAuthorInput - Mutation.createAuthor
type CreateAuthorInput struct {
	Name      string
	Biography *string
	BornDate  *string // ISO-8601 date string
}

// Validate applies the rules in field-declaration order, failing fast.
func (in CreateAuthorInput) Validate() error {
	if err := validation.Required(in.Name, "name"); err != nil {
		return err
	}
	if err := validation.String(&in.Name, "name", validation.StringOptions{
		MinLength: 1,
		MaxLength: MaxNameLength,
		Trim:      true,
	}); err != nil {
		return err
	}
	if err := validation.String(in.Biography, "biography", validation.StringOptions{
		MaxLength: MaxBiographyLength,
	}); err != nil {
		return err
	}
	return validation.Date(in.BornDate, "born_date")
}

// EditAuthorInput - Mutation.editAuthor. All fields besides id are
// three-state: absent fields are left untouched downstream, explicit
// nulls clear the stored value where the field is clearable.
type EditAuthorInput struct {
	ID        string
	Name      shared.Optional[string]
	Biography shared.Optional[string]
	BornDate  shared.Optional[string]
}

func (in EditAuthorInput) Validate() error {
	if err := validation.Required(in.ID, "id"); err != nil {
		return err
	}
	if err := validation.UUID(&in.ID, "id"); err != nil {
		return err
	}
	if in.Name.IsSet() {
		// name is not clearable: a present null or empty string is rejected
		if err := validation.Required(in.Name.Ptr(), "name"); err != nil {
			return err
		}
		if err := validation.String(in.Name.Ptr(), "name", validation.StringOptions{
			MinLength: 1,
			MaxLength: MaxNameLength,
			Trim:      true,
		}); err != nil {
			return err
		}
	}
	if err := validation.String(in.Biography.Ptr(), "biography", validation.StringOptions{
		MaxLength: MaxBiographyLength,
	}); err != nil {
		return err
	}
	return validation.Date(in.BornDate.Ptr(), "born_date")
}
