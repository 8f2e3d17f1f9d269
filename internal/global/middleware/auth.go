package middleware

import (
	"strings"

	"tyjk-club-backend/internal/global/jwt"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// Auth 鉴权中间件
// 缺少令牌返回 401，令牌无效或过期返回 403，角色等级不足返回 403
func Auth(minRole model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization 头
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenMissing)
			c.Abort()
			return
		}

		// 检查 Bearer 前缀并提取 token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// 解析 token
		if payload, valid := jwt.ParseToken(token); !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		} else if payload.Role.Rank() < minRole.Rank() {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		} else {
			c.Set("payload", payload)
		}
		c.Next()
	}
}
