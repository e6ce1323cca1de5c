package service

import (
	"context"
	"testing"

	"github.com/lessonhub/lessonhub/internal/order/repository"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_RejectsMalformedIDWithoutPersisting(t *testing.T) {
	repo := repository.NewMemoryRepo()
	svc := NewService(repo)

	ids := []string{primitive.NewObjectID().Hex(), "not-an-id"}
	_, err := svc.Create(context.Background(), map[string]interface{}{"name": "Ada"}, ids)
	require.ErrorIs(t, err, ErrInvalidLessonID)
	require.Zero(t, repo.Len())
}

func TestCreate_ThenGetRoundTrip(t *testing.T) {
	repo := repository.NewMemoryRepo()
	svc := NewService(repo)

	ids := []string{primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()}
	info := map[string]interface{}{"name": "Ada", "phone": "0123456789"}

	insertedID, err := svc.Create(context.Background(), info, ids)
	require.NoError(t, err)
	require.NotEmpty(t, insertedID)

	got, err := svc.Get(context.Background(), insertedID)
	require.NoError(t, err)
	require.Equal(t, ids, got.LessonIDs)
	require.Equal(t, info, got.OrderInfo)
	require.False(t, got.CreatedAt.IsZero())
}

func TestGet_UnknownOrder(t *testing.T) {
	svc := NewService(repository.NewMemoryRepo())
	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, repository.ErrNotFound)
}
