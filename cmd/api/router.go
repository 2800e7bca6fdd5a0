package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/graph"
	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	// GraphiQL is only exposed outside production.
	graphiql := c.Config.App.Environment != "production"
	gqlHandler := graph.NewHandler(c.Schema, c.NewLoaders, graphiql)
	router.POST("/graphql", gqlHandler)
	router.GET("/graphql", gqlHandler)

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{}
		healthy := true

		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["postgres"] = err.Error()
			healthy = false
		} else {
			checks["postgres"] = "ok"
		}

		if err := c.Mongo.HealthCheck(checkCtx); err != nil {
			checks["mongodb"] = err.Error()
			healthy = false
		} else {
			checks["mongodb"] = "ok"
		}

		if c.Cache != nil {
			if err := c.Cache.Ping(checkCtx); err != nil {
				checks["redis"] = err.Error()
			} else {
				checks["redis"] = "ok"
			}
		} else {
			checks["redis"] = "disabled"
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, gin.H{
			"status": map[bool]string{true: "healthy", false: "unhealthy"}[healthy],
			"checks": checks,
		})
	}
}
