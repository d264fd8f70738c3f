package repository

import (
	"adaptive_learning_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// randExpr 随机排序表达式因方言而异
func randExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}

func (r *ContentRepository) FindAll() ([]model.Content, error) {
	var content []model.Content
	err := r.DB.Order("id").Find(&content).Error
	return content, err
}

func (r *ContentRepository) Titles() ([]string, error) {
	var titles []string
	err := r.DB.Model(&model.Content{}).Pluck("title", &titles).Error
	return titles, err
}

func (r *ContentRepository) RandomTitles(limit int) ([]string, error) {
	var titles []string
	err := r.DB.Model(&model.Content{}).
		Order(randExpr(r.DB)).
		Limit(limit).
		Pluck("title", &titles).Error
	return titles, err
}

// ContentSnapshot 随机抽取的内容条目，连同该学生在这条内容上的
// 最近成绩（若从未交互则为 NULL）。
type ContentSnapshot struct {
	ID               uint     `json:"id"`
	Title            string   `json:"title"`
	Topic            string   `json:"topic"`
	Score            *float64 `json:"score"`
	TimeSpentSeconds *int     `json:"time_spent_seconds"`
}

// RandomForStudent 随机取一条内容，左连该学生的交互记录。
// 内容表为空时返回 (nil, nil)。
func (r *ContentRepository) RandomForStudent(studentID uint) (*ContentSnapshot, error) {
	var rows []ContentSnapshot
	err := r.DB.Raw(
		`SELECT c.id, c.title, c.topic, i.score, i.time_spent_seconds
		 FROM content c
		 LEFT JOIN interactions i ON c.id = i.content_id AND i.student_id = ?
		 ORDER BY `+randExpr(r.DB)+` LIMIT 1`,
		studentID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
