package database

import (
	"fmt"
	"log"

	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "database.db"
		}
		dialector = sqlite.Open(path)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 建表并在内容表为空时写入默认学习内容
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Student{},
		&model.Content{},
		&model.Interaction{},
	)
	if err != nil {
		return err
	}

	SeedContent(db)
	return nil
}

// SeedContent 内容没有应用内的增删改入口，部署时由这里兜底一份默认目录。
func SeedContent(db *gorm.DB) {
	var count int64
	db.Model(&model.Content{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Content{
		{Title: "Introduction to Algebra", Topic: "Algebra", Type: model.ContentLesson},
		{Title: "Algebra Basics Quiz", Topic: "Algebra", Type: model.ContentQuiz},
		{Title: "Geometry: Triangles and the Pythagorean Theorem", Topic: "Geometry", Type: model.ContentLesson},
		{Title: "Geometry Fundamentals Quiz", Topic: "Geometry", Type: model.ContentQuiz},
		{Title: "Fractions and Decimals", Topic: "Arithmetic", Type: model.ContentLesson},
		{Title: "Arithmetic Speed Quiz", Topic: "Arithmetic", Type: model.ContentQuiz},
		{Title: "History of India: Ancient Period", Topic: "History", Type: model.ContentLesson},
		{Title: "History Checkpoint Quiz", Topic: "History", Type: model.ContentQuiz},
		{Title: "Introduction to Probability", Topic: "Probability", Type: model.ContentLesson},
	}
	for _, c := range defaults {
		db.Create(&c)
	}
}
