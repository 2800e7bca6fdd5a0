package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookstore-catalog/internal/domains/metadata/model"
)

const collectionName = "book_metadata"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{collection: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique bookId index. Called once at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bookId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create bookId index: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByBookID(ctx context.Context, bookID string) (*model.BookMetadata, error) {
	var meta model.BookMetadata
	err := r.collection.FindOne(ctx, bson.M{"bookId": bookID}).Decode(&meta)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find book metadata: %w", err)
	}
	return &meta, nil
}

func (r *mongoRepository) FindByBookIDs(ctx context.Context, bookIDs []string) (map[string]*model.BookMetadata, error) {
	if len(bookIDs) == 0 {
		return map[string]*model.BookMetadata{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"bookId": bson.M{"$in": bookIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to batch find book metadata: %w", err)
	}
	defer cursor.Close(ctx)

	result := make(map[string]*model.BookMetadata, len(bookIDs))
	for cursor.Next(ctx) {
		var meta model.BookMetadata
		if err := cursor.Decode(&meta); err != nil {
			return nil, fmt.Errorf("failed to decode book metadata: %w", err)
		}
		result[meta.BookID] = &meta
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return result, nil
}

func (r *mongoRepository) Create(ctx context.Context, meta *model.BookMetadata) (*model.BookMetadata, error) {
	if meta.Reviews == nil {
		meta.Reviews = []model.Review{}
	}

	res, err := r.collection.InsertOne(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to create book metadata: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		meta.ID = oid
	}
	return meta, nil
}

func (r *mongoRepository) Save(ctx context.Context, meta *model.BookMetadata) (*model.BookMetadata, error) {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"bookId": meta.BookID}, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to save book metadata: %w", err)
	}
	return meta, nil
}
