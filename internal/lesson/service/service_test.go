package service

import (
	"context"
	"testing"

	"github.com/lessonhub/lessonhub/internal/lesson"
	"github.com/lessonhub/lessonhub/internal/lesson/repository"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	repo := repository.NewMemoryRepo()
	repo.Add(&lesson.Lesson{Subject: "Mathematics", Location: "London"})
	repo.Add(&lesson.Lesson{Subject: "English", Location: "Bristol"})
	return NewService(repo)
}

func TestSearch_FullTextStage(t *testing.T) {
	svc := newService(t)
	hits, stage, err := svc.Search(context.Background(), "Mathematics")
	require.NoError(t, err)
	require.Equal(t, StageFullText, stage)
	require.Len(t, hits, 1)
}

func TestSearch_FallbackStage(t *testing.T) {
	svc := newService(t)
	// "math" is not a whole indexed token, only a substring of "Mathematics"
	hits, stage, err := svc.Search(context.Background(), "math")
	require.NoError(t, err)
	require.Equal(t, StageFallback, stage)
	require.Len(t, hits, 1)
	require.Equal(t, "Mathematics", hits[0].Subject)
}

func TestSearch_NoMatch(t *testing.T) {
	svc := newService(t)
	hits, stage, err := svc.Search(context.Background(), "astronomy")
	require.NoError(t, err)
	require.Equal(t, StageNone, stage)
	require.Empty(t, hits)
}

func TestUpdate_InvalidID(t *testing.T) {
	svc := newService(t)
	_, err := svc.Update(context.Background(), "not-a-hex-id", map[string]interface{}{"spaces": float64(1)})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestDelete_InvalidID(t *testing.T) {
	svc := newService(t)
	_, err := svc.Delete(context.Background(), "xyz")
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestSearchStage_String(t *testing.T) {
	require.Equal(t, "fulltext", StageFullText.String())
	require.Equal(t, "fallback", StageFallback.String())
	require.Equal(t, "none", StageNone.String())
}
