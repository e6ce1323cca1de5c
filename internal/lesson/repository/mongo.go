package repository

import (
	"context"
	"regexp"

	"github.com/lessonhub/lessonhub/internal/lesson"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements a MongoDB-backed repository for lessons.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo wraps the collection and ensures the text index used by
// SearchText exists (idempotent).
func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := mongo.IndexModel{Keys: bson.D{
		{Key: "subject", Value: "text"},
		{Key: "location", Value: "text"},
	}}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context) ([]*lesson.Lesson, error) {
	return m.find(ctx, bson.M{})
}

// SearchText runs a tokenized full-text query against the subject/location
// text index.
func (m *MongoRepo) SearchText(ctx context.Context, query string) ([]*lesson.Lesson, error) {
	return m.find(ctx, bson.M{"$text": bson.M{"$search": query}})
}

// SearchSubstring matches the query as a case-insensitive literal substring
// of subject or location.
func (m *MongoRepo) SearchSubstring(ctx context.Context, query string) ([]*lesson.Lesson, error) {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return m.find(ctx, bson.M{"$or": []bson.M{
		{"subject": re},
		{"location": re},
	}})
}

// Update applies a $set merge of exactly the submitted fields and reports
// how many documents the id matched.
func (m *MongoRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := m.col.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes the lesson by id and reports how many documents were deleted.
func (m *MongoRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MongoRepo) find(ctx context.Context, filter bson.M) ([]*lesson.Lesson, error) {
	cur, err := m.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*lesson.Lesson{}
	for cur.Next(ctx) {
		var l lesson.Lesson
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, cur.Err()
}
