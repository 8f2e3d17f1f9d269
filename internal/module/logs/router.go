package logs

import (
	"tyjk-club-backend/internal/global/middleware"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (l *ModuleLogs) InitRouter(r *gin.RouterGroup) {
	logGroup := r.Group("/logs")

	// 活动日志只对管理员开放
	logGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		// 按条件查询日志
		logGroup.GET("", l.Query)

		// 日志统计
		logGroup.GET("/stats", l.Stats)

		// 导出日志
		logGroup.GET("/export", l.Export)

		// 清空日志
		logGroup.DELETE("", l.Clear)
	}
}
