package main

import (
	"context"
	"log"

	"github.com/lessonhub/lessonhub/internal/config"
	"github.com/lessonhub/lessonhub/internal/database"
	"github.com/lessonhub/lessonhub/internal/lesson"
	"github.com/lessonhub/lessonhub/internal/lesson/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the lessons collection with a starter catalogue and ensures the
// subject/location text index exists. Safe to run repeatedly: it inserts
// nothing when the collection already has documents.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("connect mongo: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	col := client.Database(cfg.MongoDB.Database).Collection("lessons")
	repository.NewMongoRepo(col) // ensures the text index

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("count lessons: %v", err)
	}
	if n > 0 {
		log.Printf("lessons collection already has %d documents, nothing to do", n)
		return
	}

	catalogue := []interface{}{
		&lesson.Lesson{Subject: "Mathematics", Location: "London", Price: 100, Spaces: 5, Image: "maths.png"},
		&lesson.Lesson{Subject: "English", Location: "Bristol", Price: 90, Spaces: 5, Image: "english.png"},
		&lesson.Lesson{Subject: "Music", Location: "Oxford", Price: 80, Spaces: 5, Image: "music.png"},
		&lesson.Lesson{Subject: "Chemistry", Location: "York", Price: 110, Spaces: 5, Image: "chemistry.png"},
		&lesson.Lesson{Subject: "Art", Location: "London", Price: 70, Spaces: 5, Image: "art.png"},
	}
	res, err := col.InsertMany(ctx, catalogue)
	if err != nil {
		log.Fatalf("insert lessons: %v", err)
	}
	log.Printf("seeded %d lessons", len(res.InsertedIDs))
}
