package model

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Application 入社申请，状态只通过状态更新接口变化，API 层不提供删除
type Application struct {
	Model
	Name       string            `gorm:"type:varchar(50);not null" json:"name"`          // 申请人姓名
	StudentID  string            `gorm:"type:varchar(20);not null" json:"student_id"`    // 学号
	Major      string            `gorm:"type:varchar(50);not null" json:"major"`         // 专业
	Email      string            `gorm:"type:varchar(100);not null" json:"email"`        // 邮箱
	Phone      string            `gorm:"type:varchar(20)" json:"phone"`                  // 电话
	Department string            `gorm:"type:varchar(50)" json:"department"`             // 意向部门
	Skills     string            `gorm:"type:text" json:"skills"`                        // 技能特长
	Experience string            `gorm:"type:text" json:"experience"`                    // 相关经历
	Motivation string            `gorm:"type:text" json:"motivation"`                    // 申请动机
	PhotoURL   string            `gorm:"type:varchar(255)" json:"photo_url"`             // 照片引用，可为空
	Status     ApplicationStatus `gorm:"type:varchar(10);default:pending" json:"status"` // 审核状态
	UserID     uint              `gorm:"index" json:"user_id"`                           // 提交人用户ID
}
