package repository

import (
	"testing"

	"adaptive_learning_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTitlesRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewContentRepository(db)

	titles, err := repo.RandomTitles(3)
	require.NoError(t, err)
	assert.Len(t, titles, 3)

	all, err := repo.Titles()
	require.NoError(t, err)
	for _, title := range titles {
		assert.Contains(t, all, title)
	}
}

func TestRandomForStudentWithoutHistory(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewContentRepository(db)

	snapshot, err := repo.RandomForStudent(1)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	// 从未交互过，左连接给出 NULL 成绩
	assert.Nil(t, snapshot.Score)
	assert.Nil(t, snapshot.TimeSpentSeconds)
	assert.NotEmpty(t, snapshot.Title)
	assert.NotEmpty(t, snapshot.Topic)
}

func TestRandomForStudentJoinsOwnInteractions(t *testing.T) {
	db := newTestDB(t)
	catalog := seedCatalog(t, db)
	repo := NewContentRepository(db)

	alice := &model.Student{Name: "alice", Password: "pw"}
	bob := &model.Student{Name: "bob", Password: "pw"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	// alice 在所有内容上都有 88 分；bob 的成绩不得串进 alice 的快照
	aliceScore := 88.0
	bobScore := 12.0
	for _, c := range catalog {
		require.NoError(t, db.Create(&model.Interaction{StudentID: alice.ID, ContentID: c.ID, Score: &aliceScore}).Error)
		require.NoError(t, db.Create(&model.Interaction{StudentID: bob.ID, ContentID: c.ID, Score: &bobScore}).Error)
	}

	snapshot, err := repo.RandomForStudent(alice.ID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	require.NotNil(t, snapshot.Score)
	assert.Equal(t, aliceScore, *snapshot.Score)
}

func TestRandomForStudentEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentRepository(db)

	snapshot, err := repo.RandomForStudent(1)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestFindAllOrderedByID(t *testing.T) {
	db := newTestDB(t)
	seeded := seedCatalog(t, db)
	repo := NewContentRepository(db)

	content, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, content, len(seeded))
	for i := range content {
		assert.Equal(t, seeded[i].Title, content[i].Title)
	}
}
