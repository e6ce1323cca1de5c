package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lessonhub/lessonhub/internal/order"
	"github.com/lessonhub/lessonhub/internal/order/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidLessonID reports a lessonId entry that is not valid ObjectID hex.
var ErrInvalidLessonID = errors.New("invalid lesson id")

// Service encapsulates order placement.
type Service struct {
	repo repository.Repository
}

func NewService(r repository.Repository) *Service {
	return &Service{repo: r}
}

// Create validates that every lessonId entry is structurally valid ObjectID
// hex before anything is persisted, then stores the order and returns its
// hex id. Whether the referenced lessons exist is deliberately not checked.
func (s *Service) Create(ctx context.Context, info interface{}, lessonIDs []string) (string, error) {
	for _, id := range lessonIDs {
		if !primitive.IsValidObjectID(id) {
			return "", fmt.Errorf("%w: %q", ErrInvalidLessonID, id)
		}
	}
	o := &order.Order{OrderInfo: info, LessonIDs: lessonIDs}
	return s.repo.Insert(ctx, o)
}

// Get returns a previously placed order.
func (s *Service) Get(ctx context.Context, id string) (*order.Order, error) {
	return s.repo.Get(ctx, id)
}
