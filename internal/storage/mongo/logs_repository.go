package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/urbangis/server/internal/domain/requestlog"
)

var _ requestlog.Repository = (*LogRepository)(nil)

type LogRepository struct {
	collection *mongo.Collection
}

func (r *LogRepository) Insert(ctx context.Context, entry requestlog.Entry) error {
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

func (r *LogRepository) Find(ctx context.Context, query requestlog.Query) ([]requestlog.Entry, error) {
	filter := buildFilter(query)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(query.Limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find logs: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []requestlog.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}
	return entries, nil
}

func buildFilter(query requestlog.Query) bson.M {
	filter := bson.M{}
	if query.Method != "" {
		filter["method"] = query.Method
	}
	if query.Status != nil {
		filter["statusCode"] = *query.Status
	}
	if query.PathContains != "" {
		filter["path"] = primitive.Regex{Pattern: query.PathContains, Options: "i"}
	}
	return filter
}
