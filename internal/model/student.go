package model

import "time"

// Student 学生账号。首次以未知用户名登录时自动创建，之后不更新不删除。
// 密码按原系统行为明文存储比对，见 DESIGN.md 的安全备注。
type Student struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Student) TableName() string {
	return "students"
}

// AdminName 该用户名登录后进入管理员视图
const AdminName = "admin"
