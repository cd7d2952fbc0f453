package service

import (
	"context"
	"encoding/json"
	"strings"

	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/upstream"
	"cyberedu_admin/internal/util"

	"golang.org/x/sync/errgroup"
)

// StatusAll 不按状态过滤
const StatusAll = "all"

type CompanyService struct {
	client *upstream.Client
}

func NewCompanyService(client *upstream.Client) *CompanyService {
	return &CompanyService{client: client}
}

// ListRequests 规范化注册申请并按状态过滤。统计数字来自后端，不受过滤影响。
func (s *CompanyService) ListRequests(ctx context.Context, status string) (*model.CompanyRequestList, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		status = StatusAll
	}
	switch status {
	case StatusAll, model.StatusPending, model.StatusApproved, model.StatusRejected:
	default:
		return nil, util.ErrInvalidStatus
	}

	res, err := s.client.ListCompanyRequests(ctx)
	if err != nil {
		return nil, err
	}
	list := res.Data

	users := make([]model.CompanyRequest, 0, len(list.Users))
	for _, u := range list.Users {
		u.Normalize()
		if status != StatusAll && u.Status != status {
			continue
		}
		users = append(users, u)
	}
	list.Users = users
	return &list, nil
}

func (s *CompanyService) Reject(ctx context.Context, email string) (*upstream.Result[json.RawMessage], error) {
	return s.client.RejectCompany(ctx, strings.TrimSpace(email))
}

// ListCompanies 超管视角的公司及员工列表
func (s *CompanyService) ListCompanies(ctx context.Context) ([]model.CompanyEmployee, error) {
	res, err := s.client.ListCompanyEmployees(ctx)
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []model.CompanyEmployee{}, nil
	}
	for i := range res.Data {
		if res.Data[i].CompanyName == "" {
			res.Data[i].CompanyName = model.UnknownCompany
		}
	}
	return res.Data, nil
}

func (s *CompanyService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	res, err := s.client.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []model.Employee{}, nil
	}
	return res.Data, nil
}

func (s *CompanyService) AddEmployee(ctx context.Context, emp model.Employee) (*upstream.Result[json.RawMessage], error) {
	emp.ID = 0
	emp.Email = strings.TrimSpace(emp.Email)
	return s.client.AddEmployee(ctx, emp)
}

func (s *CompanyService) UpdateEmployee(ctx context.Context, id int64, emp model.Employee) (*upstream.Result[json.RawMessage], error) {
	emp.ID = 0
	emp.Email = strings.TrimSpace(emp.Email)
	return s.client.UpdateEmployee(ctx, id, emp)
}

func (s *CompanyService) GetProfile(ctx context.Context) (*model.CompanyProfile, error) {
	res, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (s *CompanyService) UpdateProfile(ctx context.Context, profile model.CompanyProfile) (*upstream.Result[json.RawMessage], error) {
	return s.client.UpdateProfile(ctx, profile)
}

func (s *CompanyService) SubscriptionPlan(ctx context.Context) (json.RawMessage, error) {
	res, err := s.client.GetSubscriptionPlan(ctx)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Dashboard 并发拉取各列表后汇总
func (s *CompanyService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var (
		requests  model.CompanyRequestList
		companies []model.CompanyEmployee
		courses   []model.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.client.ListCompanyRequests(gctx)
		if err != nil {
			return err
		}
		requests = res.Data
		return nil
	})
	g.Go(func() error {
		res, err := s.client.ListCompanyEmployees(gctx)
		if err != nil {
			return err
		}
		companies = res.Data
		return nil
	})
	g.Go(func() error {
		res, err := s.client.ListCourses(gctx)
		if err != nil {
			return err
		}
		courses = res.Data
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summarize(requests, companies, courses), nil
}

func summarize(requests model.CompanyRequestList, companies []model.CompanyEmployee, courses []model.Course) *model.Dashboard {
	d := &model.Dashboard{
		TotalCompanies:  len(companies),
		TotalCourses:    len(courses),
		PendingRequests: requests.PendingCount,
	}
	for _, c := range companies {
		d.TotalEmployees += c.NoOfEmployees
	}
	for _, c := range courses {
		d.TotalVideos += c.VideoCount
	}
	return d
}
