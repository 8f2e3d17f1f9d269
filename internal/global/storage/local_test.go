package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	home := t.TempDir()
	l := NewLocal(home, "")

	stored, err := l.Store(context.Background(), []byte("fake-png"), "image/png", "avatar.PNG", "avatars")
	require.NoError(t, err)
	require.Equal(t, "/uploads/avatars/"+stored.FileName, stored.Path)
	require.Equal(t, stored.Path, stored.URL)
	// 扩展名统一小写
	require.Equal(t, ".png", filepath.Ext(stored.FileName))

	data, err := os.ReadFile(filepath.Join(home, "avatars", stored.FileName))
	require.NoError(t, err)
	require.Equal(t, []byte("fake-png"), data)
}

func TestLocalStoreBaseURL(t *testing.T) {
	l := NewLocal(t.TempDir(), "https://cdn.example.com/")

	stored, err := l.Store(context.Background(), []byte("x"), "image/jpeg", "a.jpg", "")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com"+stored.Path, stored.URL)
}

func TestLocalStoreRejectsWithoutSideEffects(t *testing.T) {
	home := t.TempDir()
	l := NewLocal(home, "")

	// 非图片类型
	_, err := l.Store(context.Background(), []byte("plain"), "text/plain", "a.txt", "docs")
	require.True(t, errors.Is(err, ErrNotImage))

	// 超过 5 MiB
	big := bytes.Repeat([]byte("a"), MaxFileSize+1)
	_, err = l.Store(context.Background(), big, "image/png", "big.png", "docs")
	require.True(t, errors.Is(err, ErrFileTooLarge))

	// 校验失败不留下任何文件和目录
	items, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestLocalStoreDistinctNames(t *testing.T) {
	l := NewLocal(t.TempDir(), "")

	seen := map[string]struct{}{}
	for i := 0; i < 10; i++ {
		stored, err := l.Store(context.Background(), []byte("x"), "image/png", "same.png", "photos")
		require.NoError(t, err)
		_, dup := seen[stored.FileName]
		require.False(t, dup, "文件名重复: %s", stored.FileName)
		seen[stored.FileName] = struct{}{}
	}
}

func TestLocalDelete(t *testing.T) {
	home := t.TempDir()
	l := NewLocal(home, "")

	stored, err := l.Store(context.Background(), []byte("x"), "image/png", "a.png", "photos")
	require.NoError(t, err)

	require.NoError(t, l.Delete(context.Background(), stored.Path))
	_, err = os.Stat(filepath.Join(home, "photos", stored.FileName))
	require.True(t, os.IsNotExist(err))

	// 幂等：再删一次不报错
	require.NoError(t, l.Delete(context.Background(), stored.Path))
	// 不存在的引用同样不报错
	require.NoError(t, l.Delete(context.Background(), "/uploads/photos/absent.png"))
}

func TestLocalDeleteRejectsTraversal(t *testing.T) {
	home := t.TempDir()
	outside := filepath.Join(filepath.Dir(home), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
	defer os.Remove(outside)

	l := NewLocal(home, "")
	require.NoError(t, l.Delete(context.Background(), "/uploads/../victim.txt"))

	_, err := os.Stat(outside)
	require.NoError(t, err)
}

func TestLocalStoreRejectsFolderTraversal(t *testing.T) {
	home := t.TempDir()
	l := NewLocal(home, "")

	// 目录名不允许越出存储根目录或携带路径分隔符
	for _, folder := range []string{"../escaped", "..", "a/b", `a\b`, "photos/../../etc"} {
		_, err := l.Store(context.Background(), []byte("x"), "image/png", "a.png", folder)
		require.True(t, errors.Is(err, ErrInvalidFolder), "folder=%s", folder)
	}

	// 被拒绝的目录名不产生任何写入，父目录也不受影响
	items, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Empty(t, items)
	_, err = os.Stat(filepath.Join(filepath.Dir(home), "escaped"))
	require.True(t, os.IsNotExist(err))
}

func TestValidateContentTypeCaseInsensitive(t *testing.T) {
	require.NoError(t, validate([]byte("x"), "IMAGE/PNG"))
	require.Error(t, validate([]byte("x"), "application/pdf"))
}
