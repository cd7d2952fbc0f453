package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cyberedu_admin/internal/config"
	"cyberedu_admin/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalThumbnailExport(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: dir})

	url, err := svc.ExportThumbnail(context.Background(), 42, []byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/thumbnails/42.jpg", url)
	assert.Equal(t, url, svc.ThumbnailURL(42))

	data, err := os.ReadFile(filepath.Join(dir, "thumbnails", "42.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)

	require.NoError(t, svc.DeleteThumbnail(context.Background(), 42))
	_, err = os.Stat(filepath.Join(dir, "thumbnails", "42.jpg"))
	assert.True(t, os.IsNotExist(err))

	// 不存在的缩略图删除视为成功
	assert.NoError(t, svc.DeleteThumbnail(context.Background(), 42))
}

func TestUnknownStorageFallsBackToLocal(t *testing.T) {
	svc := NewStorageService(&config.StorageConfig{Type: "s3", LocalPath: t.TempDir()})
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}

func TestRemoteProviderURLs(t *testing.T) {
	minio := &MinioStorageProvider{Config: &config.StorageConfig{MinioBucket: "thumbs"}}
	assert.Equal(t, "/thumbs/thumbnails/1.jpg", minio.GetURL(thumbnailKey(1)))

	oss := &OSSStorageProvider{Config: &config.StorageConfig{OSSBucket: "b", OSSEndpoint: "oss-cn-hangzhou.aliyuncs.com"}}
	assert.Equal(t, "https://b.oss-cn-hangzhou.aliyuncs.com/thumbnails/1.jpg", oss.GetURL(thumbnailKey(1)))
}
