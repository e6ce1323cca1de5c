package repository

import (
	"context"

	"github.com/lessonhub/lessonhub/internal/lesson"
)

// Repository defines the lesson persistence operations used by the service
// layer. MongoRepo is the production implementation; MemoryRepo backs unit
// tests and degraded startup.
type Repository interface {
	List(ctx context.Context) ([]*lesson.Lesson, error)
	SearchText(ctx context.Context, query string) ([]*lesson.Lesson, error)
	SearchSubstring(ctx context.Context, query string) ([]*lesson.Lesson, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
