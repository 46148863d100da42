package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	MessagesCollection = "messages"
	SessionsCollection = "sessions"
)

type MongoDB struct {
	client   *mongo.Client
	db       *mongo.Database
	Users    *mongo.Collection
	Products *mongo.Collection
	Messages *mongo.Collection
	Sessions *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	m := &MongoDB{
		client:   client,
		db:       db,
		Users:    db.Collection(UsersCollection),
		Products: db.Collection(ProductsCollection),
		Messages: db.Collection(MessagesCollection),
		Sessions: db.Collection(SessionsCollection),
	}

	slog.Info("database connected", "db", dbName)
	return m, nil
}

// EnsureIndexes creates the indexes the data model relies on: unique user
// emails, owner and name lookups, and session expiry.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	if _, err := m.Products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "product_name", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("products indexes: %w", err)
	}

	if _, err := m.Messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "Producer_mail", Value: 1}, {Key: "product_name", Value: 1}},
	}); err != nil {
		return fmt.Errorf("messages index: %w", err)
	}

	if _, err := m.Sessions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}); err != nil {
		return fmt.Errorf("sessions ttl index: %w", err)
	}
	return nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]*T, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
