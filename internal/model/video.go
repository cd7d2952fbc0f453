package model

// VideoAsset 上传到某个培训模块的视频
// Duration / Thumbnail 由网关派生，后端不提供；提取失败时为 null。
type VideoAsset struct {
	ID          int64   `json:"id"`
	CourseID    int64   `json:"course_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoURL    string  `json:"video_url,omitempty"`
	Uploaded    string  `json:"uploaded,omitempty"`
	Duration    *string `json:"duration"`
	Seconds     float64 `json:"duration_seconds,omitempty"`
	Thumbnail   *string `json:"thumbnail"`
	ThumbURL    string  `json:"thumbnail_url,omitempty"`
}

type VideoList struct {
	Videos []VideoAsset `json:"videos"`
}

// VideoUpload 上传表单
type VideoUpload struct {
	CourseID       int64  `form:"course_id"`
	Title          string `form:"title" binding:"required"`
	Description    string `form:"description"`
	UploadComplete bool   `form:"is_course_video_upload_completed"`
}

// UploadedVideo 后端上传接口的返回
type UploadedVideo struct {
	Video *VideoAsset `json:"video"`
}

type DeleteVideoRequest struct {
	VideoID int64 `json:"video_id"`
}

// VideoProbe 仅提取元数据（不上传）
type VideoProbe struct {
	Duration  *string `json:"duration"`
	Seconds   float64 `json:"duration_seconds"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Thumbnail *string `json:"thumbnail"`
	State     string  `json:"state"`
	Error     string  `json:"error,omitempty"`
}
