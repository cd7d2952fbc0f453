package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cyberedu_admin/internal/model"
)

func (c *Client) ListCourses(ctx context.Context) (*Result[[]model.Course], error) {
	return doJSON[[]model.Course](ctx, c, call{
		op:       "list_courses",
		method:   http.MethodGet,
		path:     "/course-list/",
		fallback: "Failed to fetch courses",
	}, nil)
}

func (c *Client) CreateCourse(ctx context.Context, req model.CourseRequest) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "create_course",
		method:   http.MethodPost,
		path:     "/create-course/",
		fallback: "Failed to add course",
	}, req)
}

func (c *Client) UpdateCourse(ctx context.Context, id int64, req model.CourseRequest) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "update_course",
		method:   http.MethodPut,
		path:     fmt.Sprintf("/course/%d/", id),
		fallback: "Failed to update course",
	}, req)
}

func (c *Client) DeleteCourse(ctx context.Context, id int64) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "delete_course",
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/course/%d/", id),
		fallback: "Failed to delete course",
	}, nil)
}

func (c *Client) CreateQuestion(ctx context.Context, payload model.QuestionPayload) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "create_question",
		method:   http.MethodPost,
		path:     "/question-create/",
		fallback: "Something went wrong while creating question.",
	}, payload)
}

// ListCompletedVideoQuestions 课程视频全部上传完成后才有测验题
func (c *Client) ListCompletedVideoQuestions(ctx context.Context, courseID int64) (*Result[[]model.Question], error) {
	return doJSON[[]model.Question](ctx, c, call{
		op:       "list_questions",
		method:   http.MethodGet,
		path:     "/questions-completed-videos-list/",
		query:    url.Values{"course_id": {strconv.FormatInt(courseID, 10)}},
		fallback: "Something went wrong while fetching completed video questions.",
	}, nil)
}
