package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	authormodel "bookstore-catalog/internal/domains/author/model"
	authorrepo "bookstore-catalog/internal/domains/author/repository"
	bookmodel "bookstore-catalog/internal/domains/book/model"
	bookrepo "bookstore-catalog/internal/domains/book/repository"
	metadatamodel "bookstore-catalog/internal/domains/metadata/model"
	metadatarepo "bookstore-catalog/internal/domains/metadata/repository"
)

type loadersKey struct{}

// Loaders batch and cache point lookups for one request. Batch results
// preserve the requested key order, with nil for keys not found.
type Loaders struct {
	AuthorByID       *dataloader.Loader[string, *authormodel.Author]
	BooksByAuthorID  *dataloader.Loader[string, []*bookmodel.Book]
	MetadataByBookID *dataloader.Loader[string, *metadatamodel.BookMetadata]
}

// Field resolvers force each thunk inline, so a batch can only collect
// keys already cached or deduped within the request. The default 16ms
// collection window would stall every uncached key; keep it tiny.
const loaderWait = time.Millisecond

// NewLoaders builds fresh loaders; call once per request so the
// built-in cache never outlives it.
func NewLoaders(
	authorRepo authorrepo.Repository,
	bookRepo bookrepo.Repository,
	metadataRepo metadatarepo.Repository,
) *Loaders {
	return &Loaders{
		AuthorByID: dataloader.NewBatchedLoader(
			batchAuthorsByID(authorRepo),
			dataloader.WithWait[string, *authormodel.Author](loaderWait),
		),
		BooksByAuthorID: dataloader.NewBatchedLoader(
			batchBooksByAuthorID(bookRepo),
			dataloader.WithWait[string, []*bookmodel.Book](loaderWait),
		),
		MetadataByBookID: dataloader.NewBatchedLoader(
			batchMetadataByBookID(metadataRepo),
			dataloader.WithWait[string, *metadatamodel.BookMetadata](loaderWait),
		),
	}
}

// WithLoaders stores the loaders on the request context.
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey{}, loaders)
}

// For extracts the request's loaders; nil outside a request.
func For(ctx context.Context) *Loaders {
	loaders, _ := ctx.Value(loadersKey{}).(*Loaders)
	return loaders
}

func batchAuthorsByID(repo authorrepo.Repository) dataloader.BatchFunc[string, *authormodel.Author] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*authormodel.Author] {
		ids := parseUUIDs(keys)
		found, err := repo.GetByIDs(ctx, ids)

		results := make([]*dataloader.Result[*authormodel.Author], len(keys))
		for i, key := range keys {
			if err != nil {
				results[i] = &dataloader.Result[*authormodel.Author]{Error: err}
				continue
			}
			id, parseErr := uuid.Parse(key)
			if parseErr != nil {
				results[i] = &dataloader.Result[*authormodel.Author]{}
				continue
			}
			results[i] = &dataloader.Result[*authormodel.Author]{Data: found[id]}
		}
		return results
	}
}

func batchBooksByAuthorID(repo bookrepo.Repository) dataloader.BatchFunc[string, []*bookmodel.Book] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]*bookmodel.Book] {
		ids := parseUUIDs(keys)
		found, err := repo.ListByAuthorIDs(ctx, ids)

		results := make([]*dataloader.Result[[]*bookmodel.Book], len(keys))
		for i, key := range keys {
			if err != nil {
				results[i] = &dataloader.Result[[]*bookmodel.Book]{Error: err}
				continue
			}
			id, parseErr := uuid.Parse(key)
			if parseErr != nil {
				results[i] = &dataloader.Result[[]*bookmodel.Book]{Data: []*bookmodel.Book{}}
				continue
			}
			books := found[id]
			if books == nil {
				books = []*bookmodel.Book{}
			}
			results[i] = &dataloader.Result[[]*bookmodel.Book]{Data: books}
		}
		return results
	}
}

func batchMetadataByBookID(repo metadatarepo.Repository) dataloader.BatchFunc[string, *metadatamodel.BookMetadata] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*metadatamodel.BookMetadata] {
		found, err := repo.FindByBookIDs(ctx, keys)

		results := make([]*dataloader.Result[*metadatamodel.BookMetadata], len(keys))
		for i, key := range keys {
			if err != nil {
				results[i] = &dataloader.Result[*metadatamodel.BookMetadata]{Error: err}
				continue
			}
			results[i] = &dataloader.Result[*metadatamodel.BookMetadata]{Data: found[key]}
		}
		return results
	}
}

func parseUUIDs(keys []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(keys))
	for _, key := range keys {
		if id, err := uuid.Parse(key); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
