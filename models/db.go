package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the API.
const (
	ShopsCollection     = "shops"
	UsersCollection     = "users"
	CustomersCollection = "customers"
	ProductsCollection  = "products"
	DiscountsCollection = "discounts"
	OffersCollection    = "offers"
	OrdersCollection    = "orders"
)

// ConnectMongo opens the shared MongoDB connection used by every handler.
func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// EnsureIndexes creates the lookup indexes every tenant-scoped query relies on.
// Uniqueness of (seller_id, slug) and (seller_id, email) is enforced at the
// application layer, so these stay non-unique.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		ShopsCollection: {
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "slug", Value: 1}}},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "email", Value: 1}}},
		},
		CustomersCollection: {
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "phone", Value: 1}}},
		},
		ProductsCollection: {
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		DiscountsCollection: {
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "method", Value: 1}, {Key: "status", Value: 1}}},
		},
		OffersCollection: {
			{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for coll, idx := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
