package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxFileSize 上传文件大小上限（5 MiB）
const MaxFileSize = 5 << 20

var (
	ErrFileTooLarge  = errors.New("文件大小不能超过5MB")
	ErrNotImage      = errors.New("只支持图片文件格式：JPG, PNG, GIF, WebP")
	ErrInvalidFolder = errors.New("非法的目录名")
)

// 允许的图片 MIME 类型
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// StoredFile 一次成功存储的结果
// URL 是可访问引用（本地为相对路径，S3 为长期预签名 URL），调用方视为不透明值
type StoredFile struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	FileName string `json:"file_name"`
}

// Storage 文件存储契约，后端在启动时由配置选定
type Storage interface {
	// Store 校验并保存文件，校验失败时不产生任何持久化副作用
	Store(ctx context.Context, data []byte, contentType, originalName, folder string) (*StoredFile, error)
	// Delete 删除引用指向的文件，对不存在的引用幂等
	Delete(ctx context.Context, filePath string) error
}

// validate 在任何后端 I/O 之前做统一校验
func validate(data []byte, contentType string) error {
	if _, ok := allowedImageTypes[strings.ToLower(contentType)]; !ok {
		return ErrNotImage
	}
	if len(data) > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// normalizeFolder 校验调用方提供的目录名
// 目录只作为存储根目录下的单级命名空间，拒绝路径分隔符和上级目录引用
func normalizeFolder(folder string) (string, error) {
	if folder == "" {
		return "uploads", nil
	}
	if strings.Contains(folder, "..") || strings.ContainsAny(folder, `/\`) {
		return "", ErrInvalidFolder
	}
	return folder, nil
}

// generateFileName 生成唯一文件名：毫秒时间戳 + 随机后缀 + 原始扩展名
// 靠构造保证不碰撞，不对已有存储做唯一性检查
func generateFileName(originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), suffix, ext)
}
