package upload

import (
	"io"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/database"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/global/storage"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Upload 处理图片上传请求
// multipart 字段：file 为文件本体，folder 为可选的逻辑目录
func (u *ModuleUpload) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("获取上传文件失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithTips("没有上传文件"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("打开上传文件失败", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("读取上传文件失败", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	folder := c.PostForm("folder")
	contentType := fileHeader.Header.Get("Content-Type")

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	stored, err := u.storage.Store(ctx, data, contentType, fileHeader.Filename, folder)
	switch {
	case errors.Is(err, storage.ErrInvalidFolder):
		log.Warn("上传目录名非法", "folder", folder)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	case errors.Is(err, storage.ErrNotImage), errors.Is(err, storage.ErrFileTooLarge):
		log.Warn("上传文件校验失败", "error", err, "file", fileHeader.Filename)
		response.Fail(c, response.ErrFileInvalid.WithTips(err.Error()))
		return
	case err != nil:
		log.Error("保存上传文件失败", "error", err, "file", fileHeader.Filename)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	log.Info("文件上传成功",
		"file_name", stored.FileName,
		"size", len(data),
		"folder", folder,
	)
	u.activityLog.Record("上传", "文件上传成功", activitylog.LevelSuccess, map[string]any{
		"file_name": stored.FileName,
		"size":      len(data),
	})

	response.Success(c, stored)
}

// DeleteReq 定义删除文件请求的结构体
type DeleteReq struct {
	Path string `json:"path" binding:"required"`
}

// Delete 删除已上传文件，删除不存在的引用不算错误
func (u *ModuleUpload) Delete(c *gin.Context) {
	var req DeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	if err := u.storage.Delete(ctx, req.Path); err != nil {
		log.Error("删除文件失败", "error", err, "path", req.Path)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"message": "文件删除成功"})
}
