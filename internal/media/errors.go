package media

import (
	"errors"
	"fmt"
)

// LoadError 媒体容器无法打开或解码（文件损坏、编码不支持、远程地址拉取失败）
type LoadError struct {
	Source Source
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load video metadata %s: %v", e.Source.Redacted(), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CaptureError 元数据可读，但截帧或图片编码失败
type CaptureError struct {
	Source Source
	Offset float64
	Err    error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture frame at %.3fs of %s: %v", e.Offset, e.Source.Redacted(), e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// ValidationError 上传前的校验失败（类型或大小不符）
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

func IsCaptureError(err error) bool {
	var ce *CaptureError
	return errors.As(err, &ce)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
