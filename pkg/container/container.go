// Package container wires the application's dependency graph: config,
// infrastructure (Postgres, MongoDB, Redis), repositories, services and
// the GraphQL schema. Everything it holds is a singleton for the
// process lifetime except the dataloaders, which are built per request.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	authorrepo "bookstore-catalog/internal/domains/author/repository"
	authorservice "bookstore-catalog/internal/domains/author/service"
	bookrepo "bookstore-catalog/internal/domains/book/repository"
	bookservice "bookstore-catalog/internal/domains/book/service"
	metadatarepo "bookstore-catalog/internal/domains/metadata/repository"
	metadataservice "bookstore-catalog/internal/domains/metadata/service"
	"bookstore-catalog/internal/graph"
	infracache "bookstore-catalog/internal/infrastructure/cache"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/pkg/cache"
)

const connectTimeout = 30 * time.Second

type Container struct {
	Config *config.Config

	// Infrastructure
	DB    *database.PostgresDB
	Mongo *database.MongoDB
	Cache cache.Cache // nil when Redis is disabled

	// Repositories
	AuthorRepo   authorrepo.Repository
	BookRepo     bookrepo.Repository
	MetadataRepo metadatarepo.Repository

	// Services
	AuthorService   authorservice.Service
	BookService     bookservice.Service
	MetadataService metadataservice.Service

	// GraphQL
	Resolver *graph.Resolver
	Schema   graphql.Schema
}

// NewContainer builds the dependency graph in layer order: config,
// infrastructure, repositories, services, schema. A failure at any
// layer aborts startup; callers should exit rather than limp along.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("configuration loaded")

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()

	c.Resolver = graph.NewResolver(c.AuthorService, c.BookService, c.MetadataService)
	schema, err := graph.NewSchema(c.Resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	c.Schema = schema

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db := database.NewPostgresDB(c.Config.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	c.DB = db

	mongo := database.NewMongoDB(c.Config.Mongo)
	if err := mongo.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	c.Mongo = mongo

	if err := metadatarepo.EnsureIndexes(ctx, mongo.Database); err != nil {
		return fmt.Errorf("failed to ensure mongodb indexes: %w", err)
	}

	// Redis is optional; a connection failure downgrades to running
	// without the list cache instead of aborting startup.
	if c.Config.Redis.Enabled {
		redis := infracache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		if err := redis.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("redis connection failed, continuing without cache")
		} else {
			c.Cache = redis
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorrepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookrepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.MetadataRepo = metadatarepo.NewMongoRepository(c.Mongo.Database)
}

func (c *Container) initServices() {
	c.AuthorService = authorservice.NewAuthorService(c.AuthorRepo)
	c.MetadataService = metadataservice.NewMetadataService(c.MetadataRepo, c.BookRepo)
	c.BookService = bookservice.NewBookService(c.BookRepo, c.AuthorRepo, c.MetadataService)
}

// NewLoaders returns a fresh dataloader set for one request.
func (c *Container) NewLoaders() *graph.Loaders {
	return graph.NewLoaders(c.AuthorRepo, c.BookRepo, c.MetadataRepo)
}

// Cleanup releases infrastructure connections during graceful shutdown.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.DB != nil {
		c.DB.Close()
	}
	if c.Mongo != nil {
		if err := c.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to close mongodb connection")
		}
	}
	if rc, ok := c.Cache.(*infracache.RedisClient); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis connection")
		}
	}
	log.Info().Msg("container cleanup completed")
}
