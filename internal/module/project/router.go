package project

import (
	"tyjk-club-backend/internal/global/middleware"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (p *ModuleProject) InitRouter(r *gin.RouterGroup) {
	projectGroup := r.Group("/projects")

	// 项目列表对外公开
	projectGroup.GET("", p.List)

	// 创建项目需要登录
	projectGroup.POST("", middleware.Auth(model.RoleUser), p.Create)
}
