// Package cache 缓存派生出的视频缩略图（视频 ID -> data URL）。
// 同一个 ID 一旦写入就不再修改。
package cache

import (
	"context"
	"strconv"
	"sync"
)

type ThumbnailCache interface {
	Get(ctx context.Context, videoID int64) (string, bool, error)
	// SetIfAbsent 已存在时保留旧值
	SetIfAbsent(ctx context.Context, videoID int64, dataURL string) error
}

type MemoryCache struct {
	items sync.Map
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get(_ context.Context, videoID int64) (string, bool, error) {
	v, ok := c.items.Load(videoID)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (c *MemoryCache) SetIfAbsent(_ context.Context, videoID int64, dataURL string) error {
	c.items.LoadOrStore(videoID, dataURL)
	return nil
}

func key(videoID int64) string {
	return "thumbnail:" + strconv.FormatInt(videoID, 10)
}
