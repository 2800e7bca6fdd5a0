// Package apperr defines the error taxonomy shared by the catalog
// services: missing referenced entities and uniqueness conflicts.
// Validation failures live in internal/shared/validation. Store errors
// are passed through unmodified.
package apperr

import (
	"errors"
	"fmt"
)

const (
	CodeNotFound = "NOT_FOUND"
	CodeConflict = "CONFLICT"
)

// NotFoundError means a referenced entity did not exist at the time of
// the operation. The missing id is embedded in the message.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// Extensions implements gqlerrors.ExtendedError.
func (e *NotFoundError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":   CodeNotFound,
		"entity": e.Entity,
		"id":     e.ID,
	}
}

// ConflictError means a uniqueness rule was violated.
type ConflictError struct {
	Message string
}

func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string { return e.Message }

// Extensions implements gqlerrors.ExtendedError.
func (e *ConflictError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": CodeConflict}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
