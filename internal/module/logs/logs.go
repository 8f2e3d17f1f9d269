package logs

import (
	"time"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/response"

	"github.com/gin-gonic/gin"
)

// QueryReq 定义日志查询参数，各条件取与
type QueryReq struct {
	Module    string `form:"module"`
	Level     string `form:"level" binding:"omitempty,oneof=info warning error success"`
	StartTime string `form:"start_time"` // RFC3339
	EndTime   string `form:"end_time"`   // RFC3339
	Limit     int    `form:"limit"`      // 返回最新的 N 条
}

// Query 查询活动日志
func (l *ModuleLogs) Query(c *gin.Context) {
	var req QueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	filter := activitylog.QueryFilter{
		Module: req.Module,
		Level:  activitylog.Level(req.Level),
		Limit:  req.Limit,
	}
	if req.StartTime != "" {
		t, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("start_time 格式错误"))
			return
		}
		filter.StartTime = &t
	}
	if req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("end_time 格式错误"))
			return
		}
		filter.EndTime = &t
	}

	response.Success(c, l.activityLog.Query(filter))
}

// Stats 日志统计信息
func (l *ModuleLogs) Stats(c *gin.Context) {
	response.Success(c, l.activityLog.Stats())
}

// ExportReq 定义日志导出参数
type ExportReq struct {
	Format string `form:"format" binding:"omitempty,oneof=json csv"`
}

// Export 导出全部日志，json 或 csv
func (l *ModuleLogs) Export(c *gin.Context) {
	var req ExportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	data, err := l.activityLog.Export(req.Format)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	contentType := "application/json; charset=utf-8"
	if req.Format == "csv" {
		contentType = "text/csv; charset=utf-8"
	}
	c.Data(200, contentType, []byte(data))
}

// Clear 清空活动日志
func (l *ModuleLogs) Clear(c *gin.Context) {
	l.activityLog.Clear()
	log.Info("活动日志已清空")
	response.Success(c, gin.H{"message": "日志已清空"})
}
