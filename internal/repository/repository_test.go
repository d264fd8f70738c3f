package repository

import (
	"path/filepath"
	"testing"

	"adaptive_learning_backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Student{}, &model.Content{}, &model.Interaction{}))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) []model.Content {
	t.Helper()
	items := []model.Content{
		{Title: "Introduction to Algebra", Topic: "Algebra", Type: model.ContentLesson},
		{Title: "Algebra Basics Quiz", Topic: "Algebra", Type: model.ContentQuiz},
		{Title: "Geometry: Triangles", Topic: "Geometry", Type: model.ContentLesson},
		{Title: "Fractions and Decimals", Topic: "Arithmetic", Type: model.ContentLesson},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return items
}
