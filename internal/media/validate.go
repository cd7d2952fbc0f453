package media

import (
	"fmt"
	"io"
	"strings"

	"cyberedu_admin/internal/util"
)

// ValidateUpload 校验声明的 MIME 类型与大小，在进入提取流程之前调用
func ValidateUpload(contentType string, size, maxSize int64) error {
	if !util.IsVideo(strings.ToLower(strings.TrimSpace(contentType))) {
		return &ValidationError{Field: "video", Reason: "Please select a valid video file"}
	}
	if size <= 0 {
		return &ValidationError{Field: "video", Reason: "Video file is empty"}
	}
	if maxSize > 0 && size > maxSize {
		return &ValidationError{
			Field:  "video",
			Reason: fmt.Sprintf("Video file size should not exceed %dMB", maxSize>>20),
		}
	}
	return nil
}

// SniffVideo 按内容识别，防止伪造 Content-Type
func SniffVideo(r io.Reader) (string, error) {
	mimeType, err := util.ValidateMimeType(r, []string{util.MimeVideo})
	if err != nil {
		return mimeType, &ValidationError{Field: "video", Reason: "Uploaded file content is not a video"}
	}
	return mimeType, nil
}
