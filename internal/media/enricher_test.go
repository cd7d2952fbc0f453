package media

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"cyberedu_admin/internal/cache"
	"cyberedu_admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu       sync.Mutex
	exported map[int64][]byte
}

func (s *recordingSink) ExportThumbnail(_ context.Context, id int64, jpeg []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exported == nil {
		s.exported = make(map[int64][]byte)
	}
	s.exported[id] = jpeg
	return s.ThumbnailURL(id), nil
}

func (s *recordingSink) ThumbnailURL(id int64) string {
	return fmt.Sprintf("/uploads/thumbnails/%d.jpg", id)
}

func strPtr(s string) *string { return &s }

func TestEnrich_PerAssetFailuresAreIsolated(t *testing.T) {
	e, _, _ := newTestExtractor()
	thumbs := cache.NewMemoryCache()
	enricher := NewEnricher(e, thumbs, nil, 0)

	videos := []model.VideoAsset{
		{ID: 1, VideoURL: string(srcOK)},
		{ID: 2, VideoURL: string(srcBroken)},
		{ID: 3, VideoURL: string(srcNoFrame)},
		{ID: 4},
	}

	got := enricher.Enrich(context.Background(), videos)
	require.Len(t, got, 4)

	assert.Equal(t, int64(1), got[0].ID)
	require.NotNil(t, got[0].Duration)
	assert.Equal(t, "1:06", *got[0].Duration)
	require.NotNil(t, got[0].Thumbnail)

	assert.Nil(t, got[1].Duration)
	assert.Nil(t, got[1].Thumbnail)

	require.NotNil(t, got[2].Duration)
	assert.Equal(t, "0:30", *got[2].Duration)
	assert.Nil(t, got[2].Thumbnail)

	assert.Nil(t, got[3].Duration)
	assert.Nil(t, got[3].Thumbnail)

	// 输入切片不被修改
	assert.Nil(t, videos[0].Duration)

	_, cached, _ := thumbs.Get(context.Background(), 1)
	assert.True(t, cached)
	_, cached, _ = thumbs.Get(context.Background(), 3)
	assert.False(t, cached, "failed captures are not cached")
}

func TestEnrich_CachedThumbnailNotRecomputed(t *testing.T) {
	e, _, g := newTestExtractor()
	thumbs := cache.NewMemoryCache()
	require.NoError(t, thumbs.SetIfAbsent(context.Background(), 1, "data:image/jpeg;base64,CACHED"))
	enricher := NewEnricher(e, thumbs, nil, 0)

	got := enricher.Enrich(context.Background(), []model.VideoAsset{
		{ID: 1, VideoURL: string(srcOK)},
	})

	require.NotNil(t, got[0].Thumbnail)
	assert.Equal(t, "data:image/jpeg;base64,CACHED", *got[0].Thumbnail)
	require.NotNil(t, got[0].Duration)
	assert.Equal(t, "1:06", *got[0].Duration)
	assert.Zero(t, g.calls.Load())
}

func TestEnrich_SkipsWhenNothingToDerive(t *testing.T) {
	e, p, g := newTestExtractor()
	thumbs := cache.NewMemoryCache()
	require.NoError(t, thumbs.SetIfAbsent(context.Background(), 1, "data:image/jpeg;base64,CACHED"))
	enricher := NewEnricher(e, thumbs, nil, 0)

	got := enricher.Enrich(context.Background(), []model.VideoAsset{
		{ID: 1, VideoURL: string(srcOK), Duration: strPtr("3:00")},
	})

	assert.Equal(t, "3:00", *got[0].Duration)
	assert.Zero(t, p.callsFor(srcOK))
	assert.Zero(t, g.calls.Load())
}

func TestEnrich_SecondLoadUsesCache(t *testing.T) {
	e, _, g := newTestExtractor()
	enricher := NewEnricher(e, cache.NewMemoryCache(), nil, 2)
	videos := []model.VideoAsset{{ID: 1, VideoURL: string(srcOK)}}

	first := enricher.Enrich(context.Background(), videos)
	second := enricher.Enrich(context.Background(), videos)

	require.NotNil(t, first[0].Thumbnail)
	require.NotNil(t, second[0].Thumbnail)
	assert.Equal(t, *first[0].Thumbnail, *second[0].Thumbnail)
	assert.Equal(t, int32(1), g.calls.Load())
}

func TestEnrich_ConcurrentLoadsShareOneExtraction(t *testing.T) {
	e, p, _ := newTestExtractor()
	p.delay = 200 * time.Millisecond
	enricher := NewEnricher(e, cache.NewMemoryCache(), nil, 0)
	videos := []model.VideoAsset{{ID: 1, VideoURL: string(srcOK)}}

	var wg sync.WaitGroup
	results := make([][]model.VideoAsset, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = enricher.Enrich(context.Background(), videos)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, p.callsFor(srcOK))
	for _, r := range results {
		require.NotNil(t, r[0].Duration)
		assert.Equal(t, "1:06", *r[0].Duration)
	}
}

func TestEnrich_AbandonedCallerStillPopulatesCache(t *testing.T) {
	e, p, _ := newTestExtractor()
	p.delay = 50 * time.Millisecond
	p.started = make(chan struct{}, 1)
	thumbs := cache.NewMemoryCache()
	enricher := NewEnricher(e, thumbs, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-p.started
		cancel()
	}()

	got := enricher.Enrich(ctx, []model.VideoAsset{{ID: 1, VideoURL: string(srcOK)}})
	assert.Nil(t, got[0].Thumbnail)

	assert.Eventually(t, func() bool {
		_, ok, _ := thumbs.Get(context.Background(), 1)
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestEnrich_ExportsToSink(t *testing.T) {
	e, _, _ := newTestExtractor()
	sink := &recordingSink{}
	enricher := NewEnricher(e, cache.NewMemoryCache(), sink, 0)

	got := enricher.Enrich(context.Background(), []model.VideoAsset{{ID: 1, VideoURL: string(srcOK)}})

	assert.Equal(t, sink.ThumbnailURL(1), got[0].ThumbURL)
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.NotEmpty(t, sink.exported[1])
}

type failingCache struct{}

func (failingCache) Get(context.Context, int64) (string, bool, error) {
	return "", false, errors.New("redis down")
}

func (failingCache) SetIfAbsent(context.Context, int64, string) error {
	return errors.New("redis down")
}

func TestEnrich_CacheErrorsDegradeToMiss(t *testing.T) {
	e, _, _ := newTestExtractor()
	enricher := NewEnricher(e, failingCache{}, nil, 0)

	got := enricher.Enrich(context.Background(), []model.VideoAsset{{ID: 1, VideoURL: string(srcOK)}})
	require.NotNil(t, got[0].Thumbnail)
	require.NotNil(t, got[0].Duration)
}
