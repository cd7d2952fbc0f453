package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FFmpeg 基于 ffprobe/ffmpeg 的 Prober 与 FrameGrabber 实现
type FFmpeg struct {
	Path           string
	ProbeTimeout   time.Duration
	CaptureTimeout time.Duration
}

func NewFFmpeg(path string, probeTimeout, captureTimeout time.Duration) *FFmpeg {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpeg{Path: path, ProbeTimeout: probeTimeout, CaptureTimeout: captureTimeout}
}

type probeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Duration  string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
		Format   string `json:"format_name"`
	} `json:"format"`
}

// Probe 使用 ffprobe 读取时长与视频流宽高
func (f *FFmpeg) Probe(ctx context.Context, src Source) (*Metadata, error) {
	if !src.IsRemote() {
		if _, err := os.Stat(string(src)); err != nil {
			return nil, errors.Wrap(err, "video file not found")
		}
	}

	type probeResult struct {
		out string
		err error
	}
	done := make(chan probeResult, 1)
	// ffprobe 自身有超时，调用方离开后进程仍会在超时内结束
	go func() {
		out, err := ffmpeg.ProbeWithTimeout(string(src), f.ProbeTimeout, ffmpeg.KwArgs{})
		done <- probeResult{out: out, err: err}
	}()

	var res probeResult
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		return nil, errors.Wrap(res.err, "ffprobe")
	}
	return parseProbe(res.out)
}

func parseProbe(out string) (*Metadata, error) {
	var result probeOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, errors.Wrap(err, "parse ffprobe output")
	}

	md := &Metadata{}
	var streamDuration string
	hasVideo := false
	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			hasVideo = true
			md.Width = stream.Width
			md.Height = stream.Height
			streamDuration = stream.Duration
			break
		}
	}
	if !hasVideo {
		return nil, errors.New("no video stream")
	}

	raw := result.Format.Duration
	if raw == "" || raw == "N/A" {
		raw = streamDuration
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, errors.Errorf("unreadable duration %q", raw)
	}
	md.Seconds = seconds
	return md, nil
}

// Grab 定位到 at 后输出一帧 PNG 到 stdout 并解码
func (f *FFmpeg) Grab(ctx context.Context, src Source, at time.Duration) (image.Image, error) {
	if f.CaptureTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.CaptureTimeout)
		defer cancel()
	}

	args := ffmpeg.Input(string(src), ffmpeg.KwArgs{
		"ss": fmt.Sprintf("%.3f", at.Seconds()),
	}).
		Output("pipe:", ffmpeg.KwArgs{
			"vframes":  1,
			"f":        "image2",
			"vcodec":   "png",
			"loglevel": "error",
		}).
		GetArgs()

	var out, errOut bytes.Buffer
	cmd := exec.CommandContext(ctx, f.Path, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrapf(err, "ffmpeg: %s", strings.TrimSpace(errOut.String()))
	}
	if out.Len() == 0 {
		return nil, errors.New("ffmpeg produced no frame")
	}

	frame, err := png.Decode(&out)
	if err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	return frame, nil
}

// Version 检查 ffmpeg 是否可用，用于健康检查
func (f *FFmpeg) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, f.Path, "-version", "-hide_banner")
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "ffmpeg unavailable: %s", errOut.String())
	}
	line, _, _ := strings.Cut(out.String(), "\n")
	return line, nil
}
