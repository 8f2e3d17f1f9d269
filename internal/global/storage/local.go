package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Local 本地磁盘存储，引用形如 /uploads/<folder>/<fileName>
type Local struct {
	Home    string // 文件保存根目录
	BaseURL string // 访问基础URL，为空时返回相对路径
}

func NewLocal(home, baseURL string) *Local {
	return &Local{
		Home:    home,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (l *Local) Store(ctx context.Context, data []byte, contentType, originalName, folder string) (*StoredFile, error) {
	if err := validate(data, contentType); err != nil {
		return nil, err
	}
	folder, err := normalizeFolder(folder)
	if err != nil {
		return nil, err
	}

	// 确保保存目录存在
	dir := filepath.Join(l.Home, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	fileName := generateFileName(originalName)
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return nil, err
	}

	relPath := "/uploads/" + folder + "/" + fileName
	return &StoredFile{
		URL:      l.BaseURL + relPath,
		Path:     relPath,
		FileName: fileName,
	}, nil
}

func (l *Local) Delete(ctx context.Context, filePath string) error {
	rel := strings.TrimPrefix(filePath, l.BaseURL)
	rel = strings.TrimPrefix(rel, "/uploads/")
	// 拒绝越出存储根目录的路径
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(l.Home, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
