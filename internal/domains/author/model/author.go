package model

import (
	"time"

	"github.com/google/uuid"

	"bookstore-catalog/internal/shared"
)

// Author is the relational-store entity. The id is generated on creation
// and immutable; books reference it by author_id.
type Author struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Biography *string    `json:"biography" db:"biography"`
	BornDate  *time.Time `json:"born_date" db:"born_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Patch carries the fields of a partial update. Name can never be
// cleared, so a plain pointer is enough; biography and born_date accept
// an explicit null to clear the stored value.
type Patch struct {
	Name      *string
	Biography shared.Optional[string]
	BornDate  shared.Optional[time.Time]
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && !p.Biography.IsSet() && !p.BornDate.IsSet()
}
