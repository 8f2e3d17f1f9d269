package response

import (
	"errors"
	"net/http"

	"tyjk-club-backend/config"
	"tyjk-club-backend/internal/global/logger"

	"github.com/gin-gonic/gin"
)

type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Data   any    `json:"data,omitempty"`
	Origin string `json:"origin,omitempty"`
}

// Success 返回成功响应，data 最多取第一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，HTTP 状态码由业务错误码导出
// 非 *Error 类型的错误一律按内部错误处理，不泄漏细节
func Fail(c *gin.Context, err error) {
	e := ErrInternal
	var respErr *Error
	if errors.As(err, &respErr) {
		e = respErr
	}

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}
	c.JSON(httpStatus(e.Code), body)
}

// Recovery 捕获 handler panic 并转换为 500 响应，配合 defer 使用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("请求处理发生 panic",
			"panic", r,
			"path", c.Request.URL.Path,
		)
		Fail(c, ErrInternal)
		c.Abort()
	}
}

func httpStatus(code int32) int {
	status := int(code) / 100
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
