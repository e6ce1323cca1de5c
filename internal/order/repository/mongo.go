package repository

import (
	"context"
	"time"

	"github.com/lessonhub/lessonhub/internal/order"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements a MongoDB-backed repository for orders.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, o *order.Order) (string, error) {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	o.CreatedAt = time.Now().UTC()
	if _, err := m.col.InsertOne(ctx, o); err != nil {
		return "", err
	}
	return o.ID.Hex(), nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*order.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var o order.Order
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
