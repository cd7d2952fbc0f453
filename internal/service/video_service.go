package service

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"cyberedu_admin/internal/config"
	"cyberedu_admin/internal/media"
	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/upstream"
	"cyberedu_admin/internal/util"
	"cyberedu_admin/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type VideoService struct {
	client    *upstream.Client
	extractor *media.Extractor
	enricher  *media.Enricher
	storage   *StorageService
	cfg       config.MediaConfig
}

// NewVideoService storage 为 nil 时不导出缩略图
func NewVideoService(client *upstream.Client, extractor *media.Extractor, enricher *media.Enricher, storage *StorageService, cfg config.MediaConfig) *VideoService {
	return &VideoService{
		client:    client,
		extractor: extractor,
		enricher:  enricher,
		storage:   storage,
		cfg:       cfg,
	}
}

// ListByCourse 后端返回全部视频，这里按课程过滤后补充时长和缩略图
func (s *VideoService) ListByCourse(ctx context.Context, courseID int64) ([]model.VideoAsset, error) {
	res, err := s.client.ListVideos(ctx)
	if err != nil {
		return nil, err
	}

	videos := make([]model.VideoAsset, 0, len(res.Data.Videos))
	for _, v := range res.Data.Videos {
		if courseID == 0 || v.CourseID == courseID {
			videos = append(videos, v)
		}
	}
	return s.enricher.Enrich(ctx, videos), nil
}

// Upload 校验、落盘、提取时长后转发给后端。时长提取失败不影响上传。
func (s *VideoService) Upload(ctx context.Context, form model.VideoUpload, fh *multipart.FileHeader) (*upstream.Result[model.UploadedVideo], error) {
	path, err := s.spool(fh)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	src := media.Source(path)
	var duration *media.Duration
	if d, err := s.extractor.ExtractDuration(ctx, src); err != nil {
		logger.Log.Warn("upload duration unavailable", zap.String("file", fh.Filename), zap.Error(err))
	} else {
		duration = &d
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reopen spooled video")
	}
	defer f.Close()

	res, err := s.client.UploadVideo(ctx, upstream.VideoFile{
		Form:     form,
		Filename: filepath.Base(fh.Filename),
		Content:  f,
	})
	if err != nil {
		return nil, err
	}

	if v := res.Data.Video; v != nil && duration != nil && (v.Duration == nil || *v.Duration == "") {
		formatted := duration.Formatted
		v.Duration = &formatted
		v.Seconds = duration.Seconds
	}
	return res, nil
}

// Probe 只在本地提取时长和缩略图，不调用后端
func (s *VideoService) Probe(ctx context.Context, fh *multipart.FileHeader) (*model.VideoProbe, error) {
	path, err := s.spool(fh)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return ProbeResult(s.extractor.Extract(ctx, media.Source(path))), nil
}

// ProbeResult 把提取结果转换成接口返回结构
func ProbeResult(res media.Result) *model.VideoProbe {
	out := &model.VideoProbe{State: res.State.String()}
	if res.Metadata != nil {
		out.Width = res.Metadata.Width
		out.Height = res.Metadata.Height
	}
	if res.Duration != nil {
		formatted := res.Duration.Formatted
		out.Duration = &formatted
		out.Seconds = res.Duration.Seconds
	}
	if res.Thumbnail != nil {
		thumb := res.Thumbnail.DataURL
		out.Thumbnail = &thumb
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

func (s *VideoService) Delete(ctx context.Context, id int64) (*upstream.Result[json.RawMessage], error) {
	res, err := s.client.DeleteVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.storage != nil {
		if err := s.storage.DeleteThumbnail(ctx, id); err != nil {
			logger.Log.Warn("exported thumbnail not removed", zap.Int64("video_id", id), zap.Error(err))
		}
	}
	return res, nil
}

// spool 校验后把上传内容写入临时文件，返回路径，调用方负责删除
func (s *VideoService) spool(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", &media.ValidationError{Field: "video", Reason: "Please select a valid video file"}
	}
	if err := media.ValidateUpload(fh.Header.Get("Content-Type"), fh.Size, s.cfg.MaxUploadBytes()); err != nil {
		return "", err
	}

	in, err := fh.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer in.Close()

	if _, err := media.SniffVideo(in); err != nil {
		return "", err
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "rewind upload")
	}

	dir := s.cfg.SpoolDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "create spool dir")
	}

	path := filepath.Join(dir, uuid.NewString()+videoExt(fh.Filename))
	out, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create spool file")
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(path)
		return "", errors.Wrap(err, "write spool file")
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "close spool file")
	}
	return path, nil
}

// videoExt 只保留已知扩展名，帮助 ffmpeg 识别容器格式
func videoExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return ext
		}
	}
	return ""
}
