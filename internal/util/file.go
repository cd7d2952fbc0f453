package util

import (
	"errors"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMimeType 读取内容头部识别真实 MIME 类型，调用方负责重置读取位置
func DetectMimeType(reader io.Reader) (string, error) {
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return "", err
	}
	return mtype.String(), nil
}

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/", "video/", "application/pdf"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	mimeType, err := DetectMimeType(reader)
	if err != nil {
		return "", err
	}

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsVideo 检测是否为视频
func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeVideo)
}

func IsPDF(mimeType string) bool {
	return mimeType == MimePDF || strings.HasPrefix(mimeType, MimePDF+";")
}
