package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	authormodel "bookstore-catalog/internal/domains/author/model"
	bookmodel "bookstore-catalog/internal/domains/book/model"
	metadatamodel "bookstore-catalog/internal/domains/metadata/model"
)

// Dates cross the GraphQL boundary as ISO-8601 strings; ids as opaque
// string identifiers.
const dateLayout = "2006-01-02"

// NewSchema wires the type system to the resolver's services.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	reviewType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"rating":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"comment":  &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					review, ok := p.Source.(metadatamodel.Review)
					if !ok {
						return nil, nil
					}
					return review.CreatedAt.UTC().Format(time.RFC3339), nil
				},
			},
		},
	})

	metadataType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BookMetadata",
		Fields: graphql.Fields{
			"bookId":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"reviews":         &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(reviewType))},
			"average_rating":  &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"cover_image_url": &graphql.Field{Type: graphql.String},
		},
	})

	authorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*authormodel.Author).ID.String(), nil
				},
			},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"biography": &graphql.Field{Type: graphql.String},
			"born_date": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatDate(p.Source.(*authormodel.Author).BornDate), nil
				},
			},
		},
	})

	bookType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*bookmodel.Book).ID.String(), nil
				},
			},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"published_date": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return formatDate(p.Source.(*bookmodel.Book).PublishedDate), nil
				},
			},
		},
	})

	// Relationship fields are added after creation to close the
	// Author <-> Book cycle. They resolve through the request's loaders.
	bookType.AddFieldConfig("author", &graphql.Field{
		Type: graphql.NewNonNull(authorType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			book := p.Source.(*bookmodel.Book)
			loaders := For(p.Context)
			if loaders == nil {
				return r.Authors.GetAuthor(p.Context, book.AuthorID.String())
			}
			return loaders.AuthorByID.Load(p.Context, book.AuthorID.String())()
		},
	})
	bookType.AddFieldConfig("metadata", &graphql.Field{
		Type: metadataType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			book := p.Source.(*bookmodel.Book)
			loaders := For(p.Context)
			if loaders == nil {
				return nilAsAbsent(r.Metadata.GetByBookID(p.Context, book.ID.String()))
			}
			return nilAsAbsent(loaders.MetadataByBookID.Load(p.Context, book.ID.String())())
		},
	})
	authorType.AddFieldConfig("books", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(bookType)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			author := p.Source.(*authormodel.Author)
			loaders := For(p.Context)
			if loaders == nil {
				result, err := r.Books.ListBooks(p.Context, bookmodel.ListBooksParams{
					AuthorID: stringPtr(author.ID.String()),
				})
				if err != nil {
					return nil, err
				}
				return result.Books, nil
			}
			return loaders.BooksByAuthorID.Load(p.Context, author.ID.String())()
		},
	})

	bookListResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BookListResult",
		Fields: graphql.Fields{
			"books":      &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(bookType)))},
			"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"books": &graphql.Field{
				Type: graphql.NewNonNull(bookListResultType),
				Args: graphql.FieldConfigArgument{
					"offset":     &graphql.ArgumentConfig{Type: graphql.Int},
					"limit":      &graphql.ArgumentConfig{Type: graphql.Int},
					"searchTerm": &graphql.ArgumentConfig{Type: graphql.String},
					"authorId":   &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Books.ListBooks(p.Context, decodeListBooksParams(p.Args))
				},
			},
			"book": &graphql.Field{
				Type: bookType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					// absence is a valid result, not an error
					return nilAsAbsent(r.Books.GetBook(p.Context, id))
				},
			},
			"authors": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(authorType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Authors.ListAuthors(p.Context)
				},
			},
			"author": &graphql.Field{
				Type: graphql.NewNonNull(authorType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					return r.Authors.GetAuthor(p.Context, id)
				},
			},
		},
	})

	bookInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "BookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"published_date":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"authorId":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"cover_image_url": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	authorInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AuthorInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"biography": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"born_date": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	reviewInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ReviewInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"bookId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"rating":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"comment":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	editBookInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "EditBookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":              &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"title":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"authorId":        &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"cover_image_url": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	editAuthorInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "EditAuthorInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"biography": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"born_date": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createBook": &graphql.Field{
				Type: graphql.NewNonNull(bookType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(bookInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					return r.Books.CreateBook(p.Context, decodeCreateBookInput(input))
				},
			},
			"createAuthor": &graphql.Field{
				Type: graphql.NewNonNull(authorType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(authorInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					return r.Authors.CreateAuthor(p.Context, decodeCreateAuthorInput(input))
				},
			},
			"addReview": &graphql.Field{
				Type: graphql.NewNonNull(metadataType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(reviewInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					return r.Metadata.AddReview(p.Context, decodeReviewInput(input))
				},
			},
			"editBook": &graphql.Field{
				Type: graphql.NewNonNull(bookType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(editBookInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					return r.Books.EditBook(p.Context, decodeEditBookInput(input))
				},
			},
			"editAuthor": &graphql.Field{
				Type: graphql.NewNonNull(authorType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(editAuthorInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})
					return r.Authors.EditAuthor(p.Context, decodeEditAuthorInput(input))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func formatDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// nilAsAbsent converts a typed nil pointer into an untyped nil so the
// executor renders a JSON null instead of an empty object.
func nilAsAbsent[T any](v *T, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v, nil
}

func stringPtr(s string) *string { return &s }
