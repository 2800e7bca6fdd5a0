package repository

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/pkg/cache"
)

// postgresRepository - Raw SQL with pgxpool, list results cached in Redis
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	bookColumns        = `id, title, description, published_date, author_id, created_at, updated_at`
	bookListKeyPrefix  = "books:list:"
	bookListKeyPattern = "books:list:*"
	bookListCacheTTL   = 15 * time.Minute
)

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.PublishedDate,
		&b.AuthorID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
		INSERT INTO books (id, title, description, published_date, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(ctx, query,
		book.ID,
		book.Title,
		book.Description,
		book.PublishedDate,
		book.AuthorID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidateListCache(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	book, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// cachedList is the shape stored in Redis for a list query.
type cachedList struct {
	Books      []*model.Book `json:"books"`
	TotalCount int           `json:"totalCount"`
}

func (r *postgresRepository) List(ctx context.Context, filter model.Filter) ([]*model.Book, int, error) {
	cacheKey := listCacheKey(filter)

	// Cache hit path; a cache error is degraded to a miss
	if r.cache != nil {
		var cached cachedList
		found, err := r.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("book list cache read failed")
		} else if found {
			return cached.Books, cached.TotalCount, nil
		}
	}

	whereClause, args := buildWhereClause(filter)

	// Total count without pagination
	countQuery := `SELECT COUNT(*) FROM books` + whereClause
	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	// Page of results, newest first
	pageQuery := fmt.Sprintf(
		`SELECT %s FROM books%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		bookColumns, whereClause, len(args)+1, len(args)+2,
	)
	pageArgs := append(args, filter.Offset, filter.Limit)

	rows, err := r.pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]*model.Book, 0, filter.Limit)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, cachedList{Books: books, TotalCount: totalCount}, bookListCacheTTL); err != nil {
			log.Warn().Err(err).Msg("book list cache write failed")
		}
	}

	return books, totalCount, nil
}

func (r *postgresRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]*model.Book, error) {
	if len(authorIDs) == 0 {
		return map[uuid.UUID][]*model.Book{}, nil
	}

	keys := make([]string, len(authorIDs))
	for i, id := range authorIDs {
		keys[i] = id.String()
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE author_id = ANY($1::uuid[]) ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to batch list books: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]*model.Book, len(authorIDs))
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		result[book.AuthorID] = append(result[book.AuthorID], book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, patch model.Patch) (*model.Book, error) {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	idx := 1

	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", idx))
		args = append(args, *patch.Title)
		idx++
	}
	if patch.Description.IsSet() {
		sets = append(sets, fmt.Sprintf("description = $%d", idx))
		args = append(args, patch.Description.Ptr())
		idx++
	}
	if patch.AuthorID != nil {
		sets = append(sets, fmt.Sprintf("author_id = $%d", idx))
		args = append(args, *patch.AuthorID)
		idx++
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = now()")
	query := fmt.Sprintf(
		"UPDATE books SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), idx, bookColumns,
	)
	args = append(args, id)

	updated, err := scanBook(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidateListCache(ctx)
	return updated, nil
}

// buildWhereClause assembles the filter conditions and their args.
// searchTerm matches title OR description case-insensitively.
func buildWhereClause(filter model.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	idx := 1

	if filter.SearchTerm != "" {
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+filter.SearchTerm+"%")
		idx++
	}
	if filter.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", idx))
		args = append(args, *filter.AuthorID)
		idx++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func listCacheKey(filter model.Filter) string {
	authorID := ""
	if filter.AuthorID != nil {
		authorID = filter.AuthorID.String()
	}
	raw := fmt.Sprintf("%s|%s|%d|%d", filter.SearchTerm, authorID, filter.Offset, filter.Limit)
	return bookListKeyPrefix + fmt.Sprintf("%x", md5.Sum([]byte(raw)))
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, bookListKeyPattern); err != nil {
		log.Warn().Err(err).Msg("book list cache invalidation failed")
	}
}
