package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cyberedu_admin/internal/model"
)

func (c *Client) ListCompanyRequests(ctx context.Context) (*Result[model.CompanyRequestList], error) {
	return doJSON[model.CompanyRequestList](ctx, c, call{
		op:       "list_company_requests",
		method:   http.MethodGet,
		path:     "/superadmin/requster-list/",
		fallback: "Something went wrong while fetching request list.",
	}, nil)
}

func (c *Client) RejectCompany(ctx context.Context, email string) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "reject_company",
		method:   http.MethodPost,
		path:     "/superadmin/reject-company/",
		fallback: "Something went wrong while rejecting company.",
	}, map[string]string{"email": email})
}

func (c *Client) ListCompanyEmployees(ctx context.Context) (*Result[[]model.CompanyEmployee], error) {
	return doJSON[[]model.CompanyEmployee](ctx, c, call{
		op:       "list_company_employees",
		method:   http.MethodGet,
		path:     "/superadmin/company_employee_list/",
		fallback: "Something went wrong while fetching company employee list.",
	}, nil)
}

func (c *Client) AddEmployee(ctx context.Context, emp model.Employee) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "add_employee",
		method:   http.MethodPost,
		path:     "/add-employee/",
		fallback: "Something went wrong while adding employee.",
	}, emp)
}

func (c *Client) ListEmployees(ctx context.Context) (*Result[[]model.Employee], error) {
	return doJSON[[]model.Employee](ctx, c, call{
		op:       "list_employees",
		method:   http.MethodGet,
		path:     "/employee-list/",
		fallback: "Something went wrong while fetching employee list.",
	}, nil)
}

// UpdateEmployee 后端使用 POST 而非 PUT
func (c *Client) UpdateEmployee(ctx context.Context, id int64, emp model.Employee) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "update_employee",
		method:   http.MethodPost,
		path:     fmt.Sprintf("/update-employee/%d/", id),
		fallback: "Something went wrong while updating employee.",
	}, emp)
}

func (c *Client) GetProfile(ctx context.Context) (*Result[model.CompanyProfile], error) {
	return doJSON[model.CompanyProfile](ctx, c, call{
		op:       "get_profile",
		method:   http.MethodGet,
		path:     "/update-company-profile/",
		fallback: "Something went wrong while fetching profile details.",
	}, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, profile model.CompanyProfile) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "update_profile",
		method:   http.MethodPut,
		path:     "/update-company-profile/",
		fallback: "Something went wrong while updating profile.",
	}, profile)
}

// GetSubscriptionPlan 套餐结构由后端决定，原样透传
func (c *Client) GetSubscriptionPlan(ctx context.Context) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "get_subscription_plan",
		method:   http.MethodGet,
		path:     "/subscription-plan/",
		fallback: "Something went wrong while fetching subscription details.",
	}, nil)
}
