package service

import (
	"context"
	"encoding/json"
	"strings"

	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/upstream"
	"cyberedu_admin/internal/validation"
)

type CourseService struct {
	client *upstream.Client
}

func NewCourseService(client *upstream.Client) *CourseService {
	return &CourseService{client: client}
}

func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	res, err := s.client.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []model.Course{}, nil
	}
	return res.Data, nil
}

func (s *CourseService) Create(ctx context.Context, req model.CourseRequest) (*upstream.Result[json.RawMessage], error) {
	req.CourseName = strings.TrimSpace(req.CourseName)
	return s.client.CreateCourse(ctx, req)
}

func (s *CourseService) Update(ctx context.Context, id int64, req model.CourseRequest) (*upstream.Result[json.RawMessage], error) {
	req.CourseName = strings.TrimSpace(req.CourseName)
	return s.client.UpdateCourse(ctx, id, req)
}

func (s *CourseService) Delete(ctx context.Context, id int64) (*upstream.Result[json.RawMessage], error) {
	return s.client.DeleteCourse(ctx, id)
}

func (s *CourseService) Questions(ctx context.Context, courseID int64) ([]model.Question, error) {
	res, err := s.client.ListCompletedVideoQuestions(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []model.Question{}, nil
	}
	return res.Data, nil
}

// CreateQuestion 校验后转发；绑定层已校验过，这里再检查一次以便非 HTTP 调用方使用
func (s *CourseService) CreateQuestion(ctx context.Context, courseID int64, req model.QuestionRequest) (*upstream.Result[json.RawMessage], error) {
	if err := ValidateQuestion(req); err != nil {
		return nil, err
	}
	options := make([]model.QuestionOption, len(req.Options))
	for i, opt := range req.Options {
		options[i] = model.QuestionOption{Text: strings.TrimSpace(opt.Text), IsCorrect: opt.IsCorrect}
	}
	return s.client.CreateQuestion(ctx, model.QuestionPayload{
		Course:  courseID,
		Text:    strings.TrimSpace(req.Text),
		Options: options,
	})
}

func ValidateQuestion(req model.QuestionRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return &InputError{Reason: "Please fill in all fields"}
	}
	for _, opt := range req.Options {
		if strings.TrimSpace(opt.Text) == "" {
			return &InputError{Reason: "Please fill in all fields"}
		}
	}
	if len(req.Options) < 2 {
		return &InputError{Reason: "Please provide at least two options"}
	}
	if validation.CountCorrect(req.Options) != 1 {
		return &InputError{Reason: "Please select exactly one correct answer"}
	}
	return nil
}
