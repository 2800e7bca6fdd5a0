package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is nested inside its BookMetadata aggregate; insertion order is
// chronological. A username appears at most once per aggregate.
type Review struct {
	Username  string    `bson:"username" json:"username"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   *string   `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// BookMetadata is the document-store aggregate for a book's reviews and
// cover image. bookId is a weak reference to the relational Book row:
// nothing in either store enforces it. The aggregate is created lazily
// on the first review or cover-image assignment.
type BookMetadata struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BookID        string             `bson:"bookId" json:"bookId"`
	Reviews       []Review           `bson:"reviews" json:"reviews"`
	AverageRating float64            `bson:"average_rating" json:"average_rating"`
	CoverImageURL *string            `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`
}

// New returns the default aggregate for a book: no reviews, zero rating.
func New(bookID string) *BookMetadata {
	return &BookMetadata{
		BookID:  bookID,
		Reviews: []Review{},
	}
}

// HasReviewBy reports whether username already reviewed this book.
func (m *BookMetadata) HasReviewBy(username string) bool {
	for _, r := range m.Reviews {
		if r.Username == username {
			return true
		}
	}
	return false
}

// RecomputeAverageRating restores the invariant that average_rating is
// the mean of all review ratings, or 0 when there are none. Decimal
// division keeps repeated recomputation free of float accumulation.
func (m *BookMetadata) RecomputeAverageRating() {
	if len(m.Reviews) == 0 {
		m.AverageRating = 0
		return
	}
	sum := decimal.Zero
	for _, r := range m.Reviews {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(m.Reviews))))
	m.AverageRating, _ = avg.Float64()
}
