package application

import (
	"strconv"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/database"
	"tyjk-club-backend/internal/global/jwt"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SubmitReq 定义提交报名请求的结构体
// 不接收 status 字段：新报名的状态由服务端强制为 pending，不信任客户端
type SubmitReq struct {
	Name       string `json:"name" binding:"required"`       // 姓名
	StudentID  string `json:"student_id" binding:"required"` // 学号
	Major      string `json:"major" binding:"required"`      // 专业
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Motivation string `json:"motivation"`
	PhotoURL   string `json:"photo_url"`
}

// Submit 处理提交报名请求
func (a *ModuleApplication) Submit(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req SubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定报名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	application := model.Application{
		Name:       req.Name,
		StudentID:  req.StudentID,
		Major:      req.Major,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Skills:     req.Skills,
		Experience: req.Experience,
		Motivation: req.Motivation,
		PhotoURL:   req.PhotoURL,
		Status:     model.StatusPending,
		UserID:     payload.UserID,
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	if err := a.db.WithContext(ctx).Create(&application).Error; err != nil {
		log.Error("创建报名失败", "error", err, "student_id", req.StudentID)
		response.Fail(c, response.FromDBError(err))
		return
	}

	log.Info("报名提交成功",
		"id", application.ID,
		"student_id", application.StudentID,
		"user_id", payload.UserID,
	)
	a.activityLog.Record("报名", "报名提交成功", activitylog.LevelSuccess, map[string]any{
		"id":         application.ID,
		"student_id": application.StudentID,
	})

	response.Success(c, gin.H{"message": "报名提交成功"})
}

// ListReq 定义报名列表的查询参数结构体
type ListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"` // 状态筛选
}

// List 获取报名列表，按提交时间倒序
func (a *ModuleApplication) List(c *gin.Context) {
	var req ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Warn("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidStatus.WithOrigin(err))
		return
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	query := a.db.WithContext(ctx).Model(&model.Application{})
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	var applications []model.Application
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		log.Error("获取报名列表失败", "error", err)
		response.Fail(c, response.FromDBError(err))
		return
	}

	response.Success(c, applications)
}

// UpdateStatusReq 定义更新报名状态请求的结构体
// 只接受三个合法状态值，不限制状态间的转换方向
type UpdateStatusReq struct {
	Status model.ApplicationStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}

// UpdateStatus 处理更新报名状态请求
func (a *ModuleApplication) UpdateStatus(c *gin.Context) {
	// 提前解析 ID，保证 mysql 与 sqlite 对非数字 ID 的行为一致
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("报名ID必须为数字"))
		return
	}

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定状态更新请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidStatus.WithOrigin(err))
		return
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	db := a.db.WithContext(ctx)

	var application model.Application
	if err := db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("报名不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("报名不存在"))
			return
		}
		log.Error("查询报名失败", "error", err, "id", id)
		response.Fail(c, response.FromDBError(err))
		return
	}

	// Update 会一并刷新 updated_at
	if err := db.Model(&application).Update("status", req.Status).Error; err != nil {
		log.Error("更新报名状态失败", "error", err, "id", id)
		response.Fail(c, response.FromDBError(err))
		return
	}

	log.Info("报名状态更新成功",
		"id", application.ID,
		"status", req.Status,
	)
	a.activityLog.Record("报名", "报名状态更新成功", activitylog.LevelInfo, map[string]any{
		"id":     application.ID,
		"status": req.Status,
	})
	a.notifier.ApplicationStatusChanged(application.ID, application.Name, req.Status)

	response.Success(c, gin.H{"message": "状态更新成功"})
}

// Stats 报名统计
// 用单条 GROUP BY 查询得到同一快照下的全部计数，total 为各状态之和
func (a *ModuleApplication) Stats(c *gin.Context) {
	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()

	var rows []struct {
		Status model.ApplicationStatus
		Count  int64
	}
	err := a.db.WithContext(ctx).
		Model(&model.Application{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		log.Error("获取报名统计失败", "error", err)
		response.Fail(c, response.FromDBError(err))
		return
	}

	counts := map[model.ApplicationStatus]int64{}
	var total int64
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}

	response.Success(c, gin.H{
		"total":    total,
		"pending":  counts[model.StatusPending],
		"approved": counts[model.StatusApproved],
		"rejected": counts[model.StatusRejected],
	})
}
