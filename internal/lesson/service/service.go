package service

import (
	"context"
	"errors"

	"github.com/lessonhub/lessonhub/internal/lesson"
	"github.com/lessonhub/lessonhub/internal/lesson/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidID reports an id that is not valid ObjectID hex.
	ErrInvalidID = errors.New("invalid id")
)

// SearchStage tags which lookup produced a search result set.
type SearchStage int

const (
	StageNone SearchStage = iota
	StageFullText
	StageFallback
)

func (s SearchStage) String() string {
	switch s {
	case StageFullText:
		return "fulltext"
	case StageFallback:
		return "fallback"
	}
	return "none"
}

// Service exposes the lesson business operations used by the handler layer.
type Service struct {
	repo repository.Repository
}

func NewService(r repository.Repository) *Service {
	return &Service{repo: r}
}

// Search resolves a non-empty query in two stages: a full-text lookup over
// the indexed subject/location fields, then a case-insensitive substring
// fallback when the index yields nothing. The returned stage tells the
// caller which lookup matched; StageNone with a nil error means no lesson
// matched at all. Result order is whatever the store returns.
func (s *Service) Search(ctx context.Context, query string) ([]*lesson.Lesson, SearchStage, error) {
	hits, err := s.repo.SearchText(ctx, query)
	if err != nil {
		return nil, StageNone, err
	}
	if len(hits) > 0 {
		return hits, StageFullText, nil
	}
	hits, err = s.repo.SearchSubstring(ctx, query)
	if err != nil {
		return nil, StageNone, err
	}
	if len(hits) > 0 {
		return hits, StageFallback, nil
	}
	return nil, StageNone, nil
}

func (s *Service) List(ctx context.Context) ([]*lesson.Lesson, error) {
	return s.repo.List(ctx)
}

// ValidID reports whether id is structurally valid ObjectID hex.
func ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// Update applies a partial merge of fields to the lesson and reports how
// many documents the id matched.
func (s *Service) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	if !primitive.IsValidObjectID(id) {
		return 0, ErrInvalidID
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete removes the lesson and reports how many documents were deleted.
func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	if !primitive.IsValidObjectID(id) {
		return 0, ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
