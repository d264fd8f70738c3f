package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDashboardService(t *testing.T) (*DashboardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedContent(t, db, testCatalog())

	studentRepo := repository.NewStudentRepository(db)
	contentRepo := repository.NewContentRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	svc := NewDashboardService(
		studentRepo,
		contentRepo,
		interactionRepo,
		ThresholdRule{Cutoff: 60},
		NewRecommenderService(contentRepo, nil, rand.NewSource(7)),
	)
	return svc, db
}

func TestDashboardUnknownStudent(t *testing.T) {
	svc, _ := newTestDashboardService(t)

	_, err := svc.ForStudent(context.Background(), 999)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}

func TestDashboardComposition(t *testing.T) {
	svc, db := newTestDashboardService(t)

	student := &model.Student{Name: "alice", Password: "pw"}
	require.NoError(t, db.Create(student).Error)

	score := 90.0
	spent := 300
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		interaction := &model.Interaction{
			StudentID:        student.ID,
			ContentID:        uint(i%3 + 1),
			Score:            &score,
			TimeSpentSeconds: &spent,
			Completed:        i%2 == 0,
			Timestamp:        base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(interaction).Error)
	}

	dashboard, err := svc.ForStudent(context.Background(), student.ID)
	require.NoError(t, err)

	assert.Equal(t, "alice", dashboard.Student.Name)
	assert.Len(t, dashboard.RecentInteractions, 5)
	// 最近的排最前
	assert.True(t, !dashboard.RecentInteractions[0].Timestamp.Before(dashboard.RecentInteractions[4].Timestamp))
	assert.NotEmpty(t, dashboard.CompletedTopics)
	assert.NotNil(t, dashboard.CurrentContent)
	assert.Contains(t, []string{LabelStruggling, LabelDoingWell}, dashboard.GapPrediction)
	assert.LessOrEqual(t, len(dashboard.RecommendedContent), 3)
}

func TestDashboardPredictionWithoutHistory(t *testing.T) {
	svc, db := newTestDashboardService(t)

	student := &model.Student{Name: "bob", Password: "pw"}
	require.NoError(t, db.Create(student).Error)

	dashboard, err := svc.ForStudent(context.Background(), student.ID)
	require.NoError(t, err)

	// 没有任何交互时特征全零，阈值规则判为吃力
	assert.Equal(t, LabelStruggling, dashboard.GapPrediction)
	assert.Empty(t, dashboard.RecentInteractions)
	assert.Empty(t, dashboard.CompletedTopics)
}
