package upload

import (
	"tyjk-club-backend/internal/global/middleware"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUpload) InitRouter(r *gin.RouterGroup) {
	uploadGroup := r.Group("/upload")

	uploadGroup.Use(middleware.Auth(model.RoleUser))
	{
		// 上传图片文件
		uploadGroup.POST("", u.Upload)

		// 删除已上传文件，幂等
		uploadGroup.DELETE("", u.Delete)
	}
}
