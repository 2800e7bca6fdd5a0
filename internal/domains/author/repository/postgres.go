package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/author/model"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, name, biography, born_date, created_at, updated_at`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Biography,
		&a.BornDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, author *model.Author) (*model.Author, error) {
	query := `
		INSERT INTO authors (id, name, biography, born_date)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query,
		author.ID,
		author.Name,
		author.Biography,
		author.BornDate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	author, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.Author, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*model.Author{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = ANY($1::uuid[])`

	rows, err := r.pool.Query(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to batch get authors: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*model.Author, len(ids))
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		result[author.ID] = author
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]*model.Author, 0)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return authors, nil
}

// Update applies only the fields carried by the patch, building the SET
// list dynamically. Explicit nulls write SQL NULL.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, patch model.Patch) (*model.Author, error) {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	idx := 1

	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, *patch.Name)
		idx++
	}
	if patch.Biography.IsSet() {
		sets = append(sets, fmt.Sprintf("biography = $%d", idx))
		args = append(args, patch.Biography.Ptr())
		idx++
	}
	if patch.BornDate.IsSet() {
		sets = append(sets, fmt.Sprintf("born_date = $%d", idx))
		args = append(args, patch.BornDate.Ptr())
		idx++
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = now()")
	query := fmt.Sprintf(
		"UPDATE authors SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), idx, authorColumns,
	)
	args = append(args, id)

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}
