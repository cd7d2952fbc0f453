package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"cyberedu_admin/internal/model"
)

// VideoFile 转发给后端的上传内容
type VideoFile struct {
	Form     model.VideoUpload
	Filename string
	Content  io.Reader
}

func (c *Client) ListVideos(ctx context.Context) (*Result[model.VideoList], error) {
	return doJSON[model.VideoList](ctx, c, call{
		op:       "list_videos",
		method:   http.MethodGet,
		path:     "/upload-video/",
		fallback: "Something went wrong while fetching video list.",
	}, nil)
}

func (c *Client) UploadVideo(ctx context.Context, file VideoFile) (*Result[model.UploadedVideo], error) {
	completed := "0"
	if file.Form.UploadComplete {
		completed = "1"
	}
	body, contentType := multipartBody([]formField{
		{name: "course_id", value: strconv.FormatInt(file.Form.CourseID, 10)},
		{name: "title", value: file.Form.Title},
		{name: "description", value: file.Form.Description},
		{name: "is_course_video_upload_completed", value: completed},
	}, &formFile{field: "video", filename: file.Filename, content: file.Content})

	var out model.UploadedVideo
	env, err := c.do(ctx, call{
		op:          "upload_video",
		method:      http.MethodPost,
		path:        "/upload-video/",
		body:        body,
		contentType: contentType,
		fallback:    "Something went wrong while uploading video.",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &Result[model.UploadedVideo]{Message: env.Message, Data: out}, nil
}

// DeleteVideo 后端要求 DELETE 携带 {video_id} 请求体
func (c *Client) DeleteVideo(ctx context.Context, id int64) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "delete_video",
		method:   http.MethodDelete,
		path:     "/upload-video/",
		fallback: "Something went wrong while deleting video.",
	}, model.DeleteVideoRequest{VideoID: id})
}
