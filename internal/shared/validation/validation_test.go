package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }
func num(f float64) *float64 { return &f }
func intp(i int) *int { return &i }

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("hello", "name"))
	assert.NoError(t, Required(str("hello"), "name"))
	assert.NoError(t, Required(intp(0), "rating"))
	assert.NoError(t, Required(num(0), "rating"))
	assert.NoError(t, Required(3, "rating"))

	tests := []struct {
		name  string
		value interface{}
		field string
	}{
		{"nil", nil, "name"},
		{"empty string", "", "title"},
		{"nil string pointer", (*string)(nil), "id"},
		{"pointer to empty string", str(""), "username"},
		{"nil int pointer", (*int)(nil), "rating"},
		{"zero int", 0, "rating"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.value, tt.field)
			require.Error(t, err)
			assert.Equal(t, tt.field+" is required", err.Error())
		})
	}
}

func TestString(t *testing.T) {
	opts := StringOptions{MinLength: 1, MaxLength: 10, Trim: true}

	assert.NoError(t, String(nil, "title", opts))
	assert.NoError(t, String(str("hello"), "title", opts))

	err := String(str(""), "title", opts)
	require.Error(t, err)
	assert.Equal(t, "title must be at least 1 characters long", err.Error())

	err = String(str("this is far too long"), "title", opts)
	require.Error(t, err)
	assert.Equal(t, "title must be no more than 10 characters long", err.Error())

	err = String(str("   "), "title", opts)
	require.Error(t, err)
	assert.Equal(t, "title cannot be empty", err.Error())

	// no bounds means only the trim rule can fire
	assert.NoError(t, String(str(strings.Repeat("x", 500)), "bio", StringOptions{Trim: true}))
}

func TestNumber(t *testing.T) {
	opts := NumberOptions{Min: Float(1), Max: Float(100), Integer: true}

	assert.NoError(t, Number(nil, "limit", opts))
	assert.NoError(t, Number(num(1), "limit", opts))
	assert.NoError(t, Number(num(100), "limit", opts))

	err := Number(num(0), "limit", opts)
	require.Error(t, err)
	assert.Equal(t, "limit must be at least 1", err.Error())

	err = Number(num(101), "limit", opts)
	require.Error(t, err)
	assert.Equal(t, "limit must be no more than 100", err.Error())

	err = Number(num(2.5), "limit", opts)
	require.Error(t, err)
	assert.Equal(t, "limit must be an integer", err.Error())
}

func TestNumberBoundFormatting(t *testing.T) {
	// whole bounds render without a decimal point
	err := Number(num(0), "rating", NumberOptions{Min: Float(1)})
	require.Error(t, err)
	assert.Equal(t, "rating must be at least 1", err.Error())

	err = Number(num(10), "price", NumberOptions{Max: Float(9.5)})
	require.Error(t, err)
	assert.Equal(t, "price must be no more than 9.5", err.Error())
}

func TestUUID(t *testing.T) {
	assert.NoError(t, UUID(nil, "id"))
	assert.NoError(t, UUID(str("6f1f63a2-3f9e-4f9a-8b2a-9c3d5e7f1a2b"), "id"))
	assert.NoError(t, UUID(str("6F1F63A2-3F9E-4F9A-8B2A-9C3D5E7F1A2B"), "id"))

	bad := []string{
		"",
		"not-a-uuid",
		"6f1f63a23f9e4f9a8b2a9c3d5e7f1a2b",                // missing dashes
		"6f1f63a2-3f9e-6f9a-8b2a-9c3d5e7f1a2b",            // version 6
		"6f1f63a2-3f9e-4f9a-cb2a-9c3d5e7f1a2b",            // bad variant
		"6f1f63a2-3f9e-4f9a-8b2a-9c3d5e7f1a2b-extra",      // trailing
		"g f1f63a2-3f9e-4f9a-8b2a-9c3d5e7f1a2b",           // non-hex
	}
	for _, v := range bad {
		err := UUID(str(v), "authorId")
		require.Error(t, err, "expected %q to fail", v)
		assert.Equal(t, "authorId must be a valid UUID", err.Error())
	}
}

func TestURL(t *testing.T) {
	assert.NoError(t, URL(nil, "cover_image_url"))
	assert.NoError(t, URL(str("https://example.com/covers/1.png"), "cover_image_url"))
	assert.NoError(t, URL(str("http://www.example.org"), "cover_image_url"))
	assert.NoError(t, URL(str("https://cdn.example.com/a/b?c=d&e=f"), "cover_image_url"))

	bad := []string{"", "example.com", "ftp://example.com/file", "https://", "not a url"}
	for _, v := range bad {
		err := URL(str(v), "cover_image_url")
		require.Error(t, err, "expected %q to fail", v)
		assert.Equal(t, "cover_image_url must be a valid URL", err.Error())
	}
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email(nil, "email"))
	assert.NoError(t, Email(str("reader@example.com"), "email"))

	err := Email(str("not-an-email"), "email")
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date(nil, "born_date"))
	assert.NoError(t, Date(str("1944-02-09"), "born_date"))
	assert.NoError(t, Date(str("2006-09-12T00:00:00Z"), "published_date"))
	assert.NoError(t, Date(str("2006-09-12T00:00:00.000Z"), "published_date"))

	err := Date(str("12/09/2006"), "published_date")
	require.Error(t, err)
	assert.Equal(t, "published_date must be a valid date", err.Error())
}

func TestRating(t *testing.T) {
	assert.NoError(t, Rating(nil, "rating"))
	for r := 1; r <= 5; r++ {
		assert.NoError(t, Rating(&r, "rating"))
	}

	err := Rating(intp(0), "rating")
	require.Error(t, err)
	assert.Equal(t, "rating must be at least 1", err.Error())

	err = Rating(intp(6), "rating")
	require.Error(t, err)
	assert.Equal(t, "rating must be no more than 5", err.Error())
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("1982-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1982, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2002-09-12T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = ParseDate("next tuesday")
	assert.Error(t, err)
}

func TestErrorExtensions(t *testing.T) {
	err := Required(nil, "title")
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{
		"code":  "VALIDATION_ERROR",
		"field": "title",
	}, verr.Extensions())
}
