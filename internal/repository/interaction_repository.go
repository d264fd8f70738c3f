package repository

import (
	"time"

	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(interaction *model.Interaction) error {
	return r.DB.Create(interaction).Error
}

func (r *InteractionRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Interaction{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

// RecentInteraction 面板上的一行最近活动，交互记录连同内容元数据。
type RecentInteraction struct {
	Score            *float64  `json:"score"`
	TimeSpentSeconds *int      `json:"time_spent_seconds"`
	Completed        bool      `json:"completed"`
	Timestamp        time.Time `json:"timestamp"`
	Title            string    `json:"title"`
	Topic            string    `json:"topic"`
	Type             string    `json:"type"`
}

func (r *InteractionRepository) RecentByStudent(studentID uint, limit int) ([]RecentInteraction, error) {
	var rows []RecentInteraction
	err := r.DB.Table("interactions i").
		Select("i.score, i.time_spent_seconds, i.completed, i.timestamp, c.title, c.topic, c.type").
		Joins("JOIN content c ON i.content_id = c.id").
		Where("i.student_id = ?", studentID).
		Order("i.timestamp DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CompletedTopics 学生至少完成过一次交互的主题集合
func (r *InteractionRepository) CompletedTopics(studentID uint) ([]string, error) {
	var topics []string
	err := r.DB.Table("interactions i").
		Distinct().
		Joins("JOIN content c ON i.content_id = c.id").
		Where("i.student_id = ? AND i.completed = ?", studentID, true).
		Pluck("c.topic", &topics).Error
	return topics, err
}
