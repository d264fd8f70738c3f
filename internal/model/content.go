package model

type ContentType string

const (
	ContentLesson ContentType = "lesson"
	ContentQuiz   ContentType = "quiz"
)

// Content 学习内容条目。应用内只读，目录由部署时种子或外部导入维护。
type Content struct {
	ID    uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string      `gorm:"size:255;not null" json:"title"`
	Topic string      `gorm:"size:100;index" json:"topic"`
	Type  ContentType `gorm:"size:20" json:"type"`
}

func (Content) TableName() string {
	return "content"
}
