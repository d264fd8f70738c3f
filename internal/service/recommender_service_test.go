package service

import (
	"context"
	"math/rand"
	"testing"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.Content {
	return []model.Content{
		{Title: "Introduction to Algebra", Topic: "Algebra", Type: model.ContentLesson},
		{Title: "Algebra Basics Quiz", Topic: "Algebra", Type: model.ContentQuiz},
		{Title: "Geometry: Triangles", Topic: "Geometry", Type: model.ContentLesson},
		{Title: "Fractions and Decimals", Topic: "Arithmetic", Type: model.ContentLesson},
		{Title: "History of India: Ancient Period", Topic: "History", Type: model.ContentLesson},
	}
}

func newTestRecommender(t *testing.T, seed int64) *RecommenderService {
	t.Helper()
	db := newTestDB(t)
	seedContent(t, db, testCatalog())
	return NewRecommenderService(repository.NewContentRepository(db), nil, rand.NewSource(seed))
}

func TestRecommendCapsAtThree(t *testing.T) {
	rec := newTestRecommender(t, 1)

	got, err := rec.Recommend(context.Background(), 1, nil, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRecommendExcludesCompletedTopics(t *testing.T) {
	rec := newTestRecommender(t, 1)

	got, err := rec.Recommend(context.Background(), 1, []string{"Algebra", "Geometry", "History"}, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Fractions and Decimals"}, got)
}

func TestRecommendEmptyWhenAllTopicsCompleted(t *testing.T) {
	rec := newTestRecommender(t, 1)

	got, err := rec.Recommend(context.Background(), 1, []string{"Algebra", "Geometry", "Arithmetic", "History"}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendPrefersCurrentTopicMatches(t *testing.T) {
	rec := newTestRecommender(t, 1)

	got, err := rec.Recommend(context.Background(), 1, nil, "algebra")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, title := range got {
		assert.Contains(t, []string{"Introduction to Algebra", "Algebra Basics Quiz"}, title)
	}
}

func TestRecommendFallsBackWhenTopicFilterEmpty(t *testing.T) {
	rec := newTestRecommender(t, 1)

	// 没有标题含该主题，回落到全部未完成内容
	got, err := rec.Recommend(context.Background(), 1, nil, "calculus")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRecommendCompletedTopicsCaseInsensitive(t *testing.T) {
	rec := newTestRecommender(t, 1)

	got, err := rec.Recommend(context.Background(), 1, []string{"ALGEBRA", "geometry", "Arithmetic", "hIsToRy"}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendReproducibleWithSeed(t *testing.T) {
	a := newTestRecommender(t, 42)
	b := newTestRecommender(t, 42)

	gotA, err := a.Recommend(context.Background(), 1, nil, "")
	require.NoError(t, err)
	gotB, err := b.Recommend(context.Background(), 1, nil, "")
	require.NoError(t, err)

	assert.Equal(t, gotA, gotB)
}
