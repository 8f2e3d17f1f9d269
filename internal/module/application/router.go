package application

import (
	"tyjk-club-backend/internal/global/middleware"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (a *ModuleApplication) InitRouter(r *gin.RouterGroup) {
	applicationGroup := r.Group("/applications")

	applicationGroup.Use(middleware.Auth(model.RoleUser))
	{
		// 提交报名
		applicationGroup.POST("", a.Submit)

		// 报名列表，支持按状态筛选
		applicationGroup.GET("", a.List)

		// 更新报名状态
		applicationGroup.PUT("/:id/status", a.UpdateStatus)
	}

	// 导出报名列表为 Excel，仅管理员
	applicationGroup.GET("/export", middleware.Auth(model.RoleAdmin), a.Export)

	// 报名统计
	r.GET("/statistics", middleware.Auth(model.RoleUser), a.Stats)
}
