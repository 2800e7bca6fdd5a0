package graph

import (
	authormodel "bookstore-catalog/internal/domains/author/model"
	bookmodel "bookstore-catalog/internal/domains/book/model"
	metadatamodel "bookstore-catalog/internal/domains/metadata/model"
	"bookstore-catalog/internal/shared"
)

// Argument decoding. graphql-go hands resolvers a map whose keys mirror
// the query text: an argument the client omitted is absent from the map,
// an explicit null is present with a nil value. Edit inputs keep that
// distinction through shared.Optional.

func stringArg(args map[string]interface{}, key string) *string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func intArg(args map[string]interface{}, key string) *int {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	n, ok := v.(int)
	if !ok {
		return nil
	}
	return &n
}

func optionalStringArg(args map[string]interface{}, key string) shared.Optional[string] {
	v, ok := args[key]
	if !ok {
		return shared.Optional[string]{}
	}
	if v == nil {
		return shared.Null[string]()
	}
	s, ok := v.(string)
	if !ok {
		return shared.Null[string]()
	}
	return shared.Some(s)
}

func decodeCreateBookInput(args map[string]interface{}) bookmodel.CreateBookInput {
	in := bookmodel.CreateBookInput{}
	if s := stringArg(args, "title"); s != nil {
		in.Title = *s
	}
	if s := stringArg(args, "authorId"); s != nil {
		in.AuthorID = *s
	}
	in.Description = stringArg(args, "description")
	in.PublishedDate = stringArg(args, "published_date")
	in.CoverImageURL = stringArg(args, "cover_image_url")
	return in
}

func decodeCreateAuthorInput(args map[string]interface{}) authormodel.CreateAuthorInput {
	in := authormodel.CreateAuthorInput{}
	if s := stringArg(args, "name"); s != nil {
		in.Name = *s
	}
	in.Biography = stringArg(args, "biography")
	in.BornDate = stringArg(args, "born_date")
	return in
}

func decodeReviewInput(args map[string]interface{}) metadatamodel.ReviewInput {
	in := metadatamodel.ReviewInput{}
	if s := stringArg(args, "bookId"); s != nil {
		in.BookID = *s
	}
	if s := stringArg(args, "username"); s != nil {
		in.Username = *s
	}
	if n := intArg(args, "rating"); n != nil {
		in.Rating = *n
	}
	in.Comment = stringArg(args, "comment")
	return in
}

func decodeEditBookInput(args map[string]interface{}) bookmodel.EditBookInput {
	in := bookmodel.EditBookInput{}
	if s := stringArg(args, "id"); s != nil {
		in.ID = *s
	}
	in.Title = optionalStringArg(args, "title")
	in.Description = optionalStringArg(args, "description")
	in.AuthorID = optionalStringArg(args, "authorId")
	in.CoverImageURL = optionalStringArg(args, "cover_image_url")
	return in
}

func decodeEditAuthorInput(args map[string]interface{}) authormodel.EditAuthorInput {
	in := authormodel.EditAuthorInput{}
	if s := stringArg(args, "id"); s != nil {
		in.ID = *s
	}
	in.Name = optionalStringArg(args, "name")
	in.Biography = optionalStringArg(args, "biography")
	in.BornDate = optionalStringArg(args, "born_date")
	return in
}

func decodeListBooksParams(args map[string]interface{}) bookmodel.ListBooksParams {
	return bookmodel.ListBooksParams{
		Offset:     intArg(args, "offset"),
		Limit:      intArg(args, "limit"),
		SearchTerm: stringArg(args, "searchTerm"),
		AuthorID:   stringArg(args, "authorId"),
	}
}
