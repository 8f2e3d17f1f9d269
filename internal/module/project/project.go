package project

import (
	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/database"
	"tyjk-club-backend/internal/global/jwt"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateReq 定义创建项目请求的结构体
type CreateReq struct {
	Name               string `json:"name" binding:"required"`     // 项目名称
	Description        string `json:"description"`                 // 项目描述
	Category           string `json:"category" binding:"required"` // 项目分类
	ImageURL           string `json:"image_url"`                   // 封面图引用
	DocURL             string `json:"doc_url"`                     // 文档引用
	PptURL             string `json:"ppt_url"`                     // 幻灯片引用
	OtherAttachmentURL string `json:"other_attachment_url"`        // 其他附件引用
}

// Create 处理创建项目请求，所有者取自令牌
func (p *ModuleProject) Create(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定创建项目请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	project := model.Project{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		ImageURL:           req.ImageURL,
		DocURL:             req.DocURL,
		PptURL:             req.PptURL,
		OtherAttachmentURL: req.OtherAttachmentURL,
		OwnerID:            payload.UserID,
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	if err := p.db.WithContext(ctx).Create(&project).Error; err != nil {
		log.Error("创建项目失败", "error", err, "name", req.Name)
		response.Fail(c, response.FromDBError(err))
		return
	}

	log.Info("项目创建成功",
		"id", project.ID,
		"name", project.Name,
		"owner_id", payload.UserID,
	)
	p.activityLog.Record("项目", "项目创建成功", activitylog.LevelSuccess, map[string]any{
		"id":   project.ID,
		"name": project.Name,
	})

	response.Success(c, gin.H{"message": "项目创建成功"})
}

// ListReq 定义项目列表的查询参数结构体
type ListReq struct {
	UserID uint `form:"user_id"` // 按所有者筛选
}

// List 获取项目列表，按创建时间倒序
func (p *ModuleProject) List(c *gin.Context) {
	var req ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Warn("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	query := p.db.WithContext(ctx).Model(&model.Project{})
	if req.UserID != 0 {
		query = query.Where("owner_id = ?", req.UserID)
	}

	var projects []model.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		log.Error("获取项目列表失败", "error", err)
		response.Fail(c, response.FromDBError(err))
		return
	}

	response.Success(c, projects)
}
