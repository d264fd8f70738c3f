package service

import (
	"path/filepath"
	"testing"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Student{}, &model.Content{}, &model.Interaction{}))
	return db
}

func seedContent(t *testing.T, db *gorm.DB, items []model.Content) {
	t.Helper()
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
}
