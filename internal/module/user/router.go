package user

import (
	"tyjk-club-backend/internal/global/middleware"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化用户模块的路由
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	// 认证端点无需登录
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", u.SignUp)
		authGroup.POST("/signin", u.SignIn)
	}

	// 当前用户信息需要登录
	r.GET("/user", middleware.Auth(model.RoleUser), u.Me)
}
