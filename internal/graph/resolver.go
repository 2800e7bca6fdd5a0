// Package graph binds the catalog services to a GraphQL schema built at
// runtime. Field resolution across sibling objects goes through
// per-request dataloaders to avoid duplicate point lookups.
package graph

import (
	authorservice "bookstore-catalog/internal/domains/author/service"
	bookservice "bookstore-catalog/internal/domains/book/service"
	metadataservice "bookstore-catalog/internal/domains/metadata/service"
)

// Resolver is the root resolver holding the service dependencies.
type Resolver struct {
	Authors  authorservice.Service
	Books    bookservice.Service
	Metadata metadataservice.Service
}

func NewResolver(
	authors authorservice.Service,
	books bookservice.Service,
	metadata metadataservice.Service,
) *Resolver {
	return &Resolver{
		Authors:  authors,
		Books:    books,
		Metadata: metadata,
	}
}
