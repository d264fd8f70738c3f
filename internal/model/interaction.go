package model

import "time"

// Interaction 一次学习事件，只追加不修改。Score 和 TimeSpentSeconds
// 允许为空，缺省时按 NULL 落库。
type Interaction struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID        uint      `gorm:"index;not null" json:"student_id"`
	ContentID        uint      `gorm:"index;not null" json:"content_id"`
	Score            *float64  `json:"score"`
	TimeSpentSeconds *int      `json:"time_spent_seconds"`
	Completed        bool      `gorm:"default:false" json:"completed"`
	Timestamp        time.Time `gorm:"autoCreateTime" json:"timestamp"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`
	Content Content `gorm:"foreignKey:ContentID" json:"-"`
}

func (Interaction) TableName() string {
	return "interactions"
}
