package model

// UserProfile 用户档案，注册时随用户一并创建，一对一
type UserProfile struct {
	Model
	UserID       uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string `gorm:"type:varchar(50)" json:"name"`
	StudentID    string `gorm:"type:varchar(20)" json:"student_id"`
	Major        string `gorm:"type:varchar(50)" json:"major"`
	Grade        string `gorm:"type:varchar(20)" json:"grade"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	Birthday     string `gorm:"type:varchar(20)" json:"birthday"`
	QQ           string `gorm:"type:varchar(20)" json:"qq"`
	Bio          string `gorm:"type:varchar(255)" json:"bio"`
	AvatarURL    string `gorm:"type:varchar(255)" json:"avatar_url"`
	Introduction string `gorm:"type:text" json:"introduction"`
}
