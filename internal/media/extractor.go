// Package media 从视频文件或远程地址提取时长与一帧缩略图。
//
// 每次提取严格按 加载元数据 -> 定位 -> 截帧 顺序执行，
// 加载失败返回 *LoadError，截帧失败返回 *CaptureError。
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"math"
	"net/url"
	"strings"
	"time"

	"cyberedu_admin/pkg/logger"
	"cyberedu_admin/pkg/monitoring"
	"cyberedu_admin/pkg/tracing"

	"github.com/disintegration/imaging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Source 本地文件路径或 http(s) 地址
type Source string

func (s Source) IsRemote() bool {
	lower := strings.ToLower(string(s))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Redacted 去掉签名地址的查询参数，用于日志
func (s Source) Redacted() string {
	if !s.IsRemote() {
		return string(s)
	}
	u, err := url.Parse(string(s))
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}

// Metadata 容器元数据，宽高未知时为 0
type Metadata struct {
	Seconds float64
	Width   int
	Height  int
}

// Prober 读取容器元数据
type Prober interface {
	Probe(ctx context.Context, src Source) (*Metadata, error)
}

// FrameGrabber 定位到 at 并解码一帧
type FrameGrabber interface {
	Grab(ctx context.Context, src Source, at time.Duration) (image.Image, error)
}

// Thumbnail 编码后的缩略图
type Thumbnail struct {
	DataURL string
	JPEG    []byte
	Width   int
	Height  int
}

// Result 一次完整提取的结果，Err 与终态对应
type Result struct {
	State     State
	Metadata  *Metadata
	Duration  *Duration
	Thumbnail *Thumbnail
	Err       error
}

type Extractor struct {
	prober  Prober
	grabber FrameGrabber
	quality int
}

type Option func(*Extractor)

// WithJPEGQuality 1..100，默认 80
func WithJPEGQuality(q int) Option {
	return func(e *Extractor) {
		if q >= 1 && q <= 100 {
			e.quality = q
		}
	}
}

func NewExtractor(prober Prober, grabber FrameGrabber, opts ...Option) *Extractor {
	e := &Extractor{
		prober:  prober,
		grabber: grabber,
		quality: 80,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extractor) transition(src Source, to State) {
	logger.Log.Debug("media state", zap.String("source", src.Redacted()), zap.String("state", to.String()))
	if to.Terminal() || to == StateMetadataReady {
		monitoring.MediaStates.WithLabelValues(to.String()).Inc()
	}
}

// LoadMetadata Idle -> LoadingMetadata -> MetadataReady | LoadError
func (e *Extractor) LoadMetadata(ctx context.Context, src Source) (*Metadata, error) {
	ctx, span := tracing.Tracer.Start(ctx, "media.LoadMetadata")
	defer span.End()
	span.SetAttributes(attribute.Bool("media.remote", src.IsRemote()))

	e.transition(src, StateLoadingMetadata)
	start := time.Now()
	md, err := e.prober.Probe(ctx, src)
	monitoring.MediaStepDuration.WithLabelValues("metadata").Observe(time.Since(start).Seconds())

	if err == nil && md == nil {
		err = errors.New("prober returned no metadata")
	}
	if err == nil && !validSeconds(md.Seconds) {
		err = errors.New("duration unavailable")
	}
	if err != nil {
		e.transition(src, StateLoadError)
		span.SetStatus(codes.Error, err.Error())
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, &LoadError{Source: src, Err: err}
	}

	e.transition(src, StateMetadataReady)
	span.SetAttributes(attribute.Float64("media.seconds", md.Seconds))
	return md, nil
}

func validSeconds(s float64) bool {
	return s > 0 && !math.IsNaN(s) && !math.IsInf(s, 0)
}

// ExtractDuration 只加载元数据并格式化时长
func (e *Extractor) ExtractDuration(ctx context.Context, src Source) (Duration, error) {
	md, err := e.LoadMetadata(ctx, src)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(md.Seconds), nil
}

// CaptureFrame MetadataReady -> SeekingFrame -> FrameCaptured | CaptureError
func (e *Extractor) CaptureFrame(ctx context.Context, src Source, md *Metadata) (*Thumbnail, error) {
	ctx, span := tracing.Tracer.Start(ctx, "media.CaptureFrame")
	defer span.End()

	offset := SeekOffset(md.Seconds)
	e.transition(src, StateSeekingFrame)

	start := time.Now()
	thumb, err := e.capture(ctx, src, md, offset)
	monitoring.MediaStepDuration.WithLabelValues("capture").Observe(time.Since(start).Seconds())
	if err != nil {
		e.transition(src, StateCaptureError)
		span.SetStatus(codes.Error, err.Error())
		return nil, &CaptureError{Source: src, Offset: offset.Seconds(), Err: err}
	}

	e.transition(src, StateFrameCaptured)
	return thumb, nil
}

func (e *Extractor) capture(ctx context.Context, src Source, md *Metadata, offset time.Duration) (*Thumbnail, error) {
	frame, err := e.grabber.Grab(ctx, src, offset)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return nil, errors.New("no frame decoded")
	}

	width, height := md.Width, md.Height
	if width <= 0 || height <= 0 {
		width, height = FallbackWidth, FallbackHeight
	}

	data, err := encodeJPEG(frame, width, height, e.quality)
	if err != nil {
		return nil, err
	}
	return &Thumbnail{
		DataURL: DataURL("image/jpeg", data),
		JPEG:    data,
		Width:   width,
		Height:  height,
	}, nil
}

// GenerateThumbnail 完整流程，返回 data URL
func (e *Extractor) GenerateThumbnail(ctx context.Context, src Source) (string, error) {
	md, err := e.LoadMetadata(ctx, src)
	if err != nil {
		return "", err
	}
	thumb, err := e.CaptureFrame(ctx, src, md)
	if err != nil {
		return "", err
	}
	return thumb.DataURL, nil
}

// Extract 运行完整流程，不返回 error，错误记录在结果中
func (e *Extractor) Extract(ctx context.Context, src Source) Result {
	md, err := e.LoadMetadata(ctx, src)
	if err != nil {
		return Result{State: StateLoadError, Err: err}
	}

	d := NewDuration(md.Seconds)
	res := Result{State: StateMetadataReady, Metadata: md, Duration: &d}

	thumb, err := e.CaptureFrame(ctx, src, md)
	if err != nil {
		res.State = StateCaptureError
		res.Err = err
		return res
	}
	res.State = StateFrameCaptured
	res.Thumbnail = thumb
	return res
}

// encodeJPEG 按目标尺寸输出 JPEG，帧尺寸不一致时缩放
func encodeJPEG(frame image.Image, width, height, quality int) ([]byte, error) {
	b := frame.Bounds()
	if b.Dx() != width || b.Dy() != height {
		frame = imaging.Resize(frame, width, height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, frame, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL 解析 base64 data URL
func DecodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, errors.New("not a data url")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("malformed data url")
	}
	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.New("data url is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mimeType, data, nil
}
