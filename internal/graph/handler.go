package graph

import (
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler serves the GraphQL endpoint over gin. Each request gets a
// fresh set of dataloaders so batching and caching never outlive the
// request that created them.
func NewHandler(schema graphql.Schema, loaderFactory func() *Loaders, graphiql bool) gin.HandlerFunc {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
	return func(c *gin.Context) {
		ctx := WithLoaders(c.Request.Context(), loaderFactory())
		h.ContextHandler(ctx, c.Writer, c.Request)
	}
}
