// Package mongo backs the request-log store with a MongoDB collection.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/urbangis/server/internal/config"
)

// Client owns the driver connection; Close releases it on shutdown.
type Client struct {
	client *mongo.Client
	cfg    config.MongoConfig
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mongo: URL is empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Client{client: client, cfg: cfg}, nil
}

func (c *Client) Logs() *LogRepository {
	return &LogRepository{
		collection: c.client.Database(c.cfg.Database).Collection(c.cfg.Collection),
	}
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
