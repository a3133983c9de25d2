package db

import (
	"context"
	"fmt"
	"time"

	"quickaid/logger"
	"quickaid/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoStore keeps one document per ticket in a single collection, keyed
// by ticket id (_id).
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func OpenMongo(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	opts := options.Client().ApplyURI(uri).SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.L.Info("connected to document store",
		zap.String("database", database),
		zap.String("collection", collection))

	s := NewMongoStore(client.Database(database).Collection(collection))
	s.client = client
	return s, nil
}

// NewMongoStore wraps an existing collection. Close is a no-op for stores
// built this way.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Create(ctx context.Context, t *models.Ticket) error {
	if _, err := s.coll.InsertOne(ctx, t); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error) {
	filter := bson.M{}
	if f.Email != "" {
		filter = bson.M{"email": f.Email}
	}

	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer cur.Close(ctx)

	tickets := make([]models.Ticket, 0)
	if err := cur.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	return tickets, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
