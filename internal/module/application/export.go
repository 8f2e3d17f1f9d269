package application

import (
	"os"
	"path/filepath"
	"time"

	"tyjk-club-backend/internal/global/database"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"
	"tyjk-club-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// applicationRow 导出 Excel 的行结构，表头取自 excel 标签
type applicationRow struct {
	Name       string `excel:"姓名"`
	StudentID  string `excel:"学号"`
	Major      string `excel:"专业"`
	Email      string `excel:"邮箱"`
	Phone      string `excel:"电话"`
	Department string `excel:"意向部门"`
	Status     string `excel:"状态"`
	CreatedAt  string `excel:"提交时间"`
}

// Export 导出全部报名为 Excel 文件
func (a *ModuleApplication) Export(c *gin.Context) {
	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()

	var applications []model.Application
	if err := a.db.WithContext(ctx).Order("created_at DESC").Find(&applications).Error; err != nil {
		log.Error("查询报名列表失败", "error", err)
		response.Fail(c, response.FromDBError(err))
		return
	}

	rows := make([]applicationRow, 0, len(applications))
	for _, app := range applications {
		rows = append(rows, applicationRow{
			Name:       app.Name,
			StudentID:  app.StudentID,
			Major:      app.Major,
			Email:      app.Email,
			Phone:      app.Phone,
			Department: app.Department,
			Status:     string(app.Status),
			CreatedAt:  app.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, "报名列表", rows); err != nil {
		log.Error("生成 Excel 失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	fileName := "applications_" + time.Now().Format("20060102150405") + ".xlsx"
	tmpPath := filepath.Join(os.TempDir(), fileName)
	if err := f.SaveAs(tmpPath); err != nil {
		log.Error("保存 Excel 失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	defer os.Remove(tmpPath)

	log.Info("导出报名列表", "count", len(rows))
	_ = tools.SendStoredFile(c, tmpPath, fileName, tools.ExcelContentType)
}
