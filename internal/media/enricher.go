package media

import (
	"context"
	"strconv"

	"cyberedu_admin/internal/cache"
	"cyberedu_admin/internal/model"
	"cyberedu_admin/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ThumbnailSink 可选，把新截取的缩略图另存到对象存储
type ThumbnailSink interface {
	ExportThumbnail(ctx context.Context, videoID int64, jpeg []byte) (string, error)
	ThumbnailURL(videoID int64) string
}

// Enricher 为视频列表补充时长和缩略图。
// 每个视频独立并发处理；同一视频同一时刻最多只有一次提取在进行。
type Enricher struct {
	extractor *Extractor
	cache     cache.ThumbnailCache
	sink      ThumbnailSink
	limit     int
	flights   singleflight.Group
}

// NewEnricher limit <= 0 表示不限制并发
func NewEnricher(extractor *Extractor, thumbs cache.ThumbnailCache, sink ThumbnailSink, limit int) *Enricher {
	if thumbs == nil {
		thumbs = cache.NewMemoryCache()
	}
	return &Enricher{
		extractor: extractor,
		cache:     thumbs,
		sink:      sink,
		limit:     limit,
	}
}

type flightResult struct {
	duration  *Duration
	thumbnail string
	exported  bool
	state     State
}

// Enrich 返回与输入顺序一致的新切片；单个视频失败只会让对应字段为 null
func (e *Enricher) Enrich(ctx context.Context, videos []model.VideoAsset) []model.VideoAsset {
	out := make([]model.VideoAsset, len(videos))
	copy(out, videos)

	var g errgroup.Group
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}
	for i := range out {
		v := &out[i]
		if v.VideoURL == "" {
			continue
		}
		g.Go(func() error {
			e.enrichOne(ctx, v)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func hasDuration(v *model.VideoAsset) bool {
	return v.Duration != nil && *v.Duration != ""
}

func (e *Enricher) cachedThumbnail(ctx context.Context, id int64) (string, bool) {
	thumb, ok, err := e.cache.Get(ctx, id)
	if err != nil {
		logger.Log.Warn("thumbnail cache lookup failed", zap.Int64("video_id", id), zap.Error(err))
		return "", false
	}
	return thumb, ok
}

func (e *Enricher) enrichOne(ctx context.Context, v *model.VideoAsset) {
	thumb, cached := e.cachedThumbnail(ctx, v.ID)
	if cached {
		v.Thumbnail = &thumb
		if e.sink != nil {
			v.ThumbURL = e.sink.ThumbnailURL(v.ID)
		}
	}
	if cached && hasDuration(v) {
		return
	}

	// 提取与调用方生命周期解耦：调用方离开后提取继续完成并写入缓存，结果被丢弃
	flightCtx := context.WithoutCancel(ctx)
	ch := e.flights.DoChan(strconv.FormatInt(v.ID, 10), func() (interface{}, error) {
		return e.run(flightCtx, v.ID, Source(v.VideoURL)), nil
	})

	var res flightResult
	select {
	case <-ctx.Done():
		return
	case r := <-ch:
		res = r.Val.(flightResult)
	}

	if !hasDuration(v) && res.duration != nil {
		formatted := res.duration.Formatted
		v.Duration = &formatted
		v.Seconds = res.duration.Seconds
	}
	if !cached && res.thumbnail != "" {
		thumb := res.thumbnail
		v.Thumbnail = &thumb
		if res.exported && e.sink != nil {
			v.ThumbURL = e.sink.ThumbnailURL(v.ID)
		}
	}
}

func (e *Enricher) run(ctx context.Context, id int64, src Source) flightResult {
	md, err := e.extractor.LoadMetadata(ctx, src)
	if err != nil {
		logger.Log.Warn("video metadata unavailable", zap.Int64("video_id", id), zap.Error(err))
		return flightResult{state: StateLoadError}
	}
	d := NewDuration(md.Seconds)
	out := flightResult{duration: &d, state: StateMetadataReady}

	// 已缓存的缩略图不重新截取
	if thumb, ok := e.cachedThumbnail(ctx, id); ok {
		out.thumbnail = thumb
		return out
	}

	thumb, err := e.extractor.CaptureFrame(ctx, src, md)
	if err != nil {
		// 失败不缓存，下次加载列表时重试
		logger.Log.Warn("thumbnail capture failed", zap.Int64("video_id", id), zap.Error(err))
		out.state = StateCaptureError
		return out
	}
	out.state = StateFrameCaptured
	out.thumbnail = thumb.DataURL

	if err := e.cache.SetIfAbsent(ctx, id, out.thumbnail); err != nil {
		logger.Log.Warn("thumbnail cache store failed", zap.Int64("video_id", id), zap.Error(err))
	}
	if e.sink != nil {
		if _, err := e.sink.ExportThumbnail(ctx, id, thumb.JPEG); err != nil {
			logger.Log.Warn("thumbnail export failed", zap.Int64("video_id", id), zap.Error(err))
		} else {
			out.exported = true
		}
	}
	return out
}
