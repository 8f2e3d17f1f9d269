package model

type Project struct {
	Model
	Name               string `gorm:"type:varchar(100);not null" json:"name"`           // 项目名称
	Description        string `gorm:"type:text" json:"description"`                     // 项目描述
	Category           string `gorm:"type:varchar(50)" json:"category"`                 // 项目分类
	ImageURL           string `gorm:"type:varchar(255)" json:"image_url"`               // 封面图引用
	DocURL             string `gorm:"type:varchar(255)" json:"doc_url"`                 // 文档引用
	PptURL             string `gorm:"type:varchar(255)" json:"ppt_url"`                 // 幻灯片引用
	OtherAttachmentURL string `gorm:"type:varchar(255)" json:"other_attachment_url"`    // 其他附件引用
	OwnerID            uint   `gorm:"index;not null" json:"owner_id"`                   // 所有者用户ID，外键指向用户表
}
