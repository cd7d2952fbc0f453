package model

import "strings"

// 公司管理员注册申请状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const UnknownCompany = "Unknown Company"

type CompanyRequest struct {
	ID            int64  `json:"id"`
	CompanyName   string `json:"company_name"`
	Email         string `json:"email"`
	NoOfEmployees int    `json:"no_of_employees"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// Normalize 补默认值并统一状态大小写
func (r *CompanyRequest) Normalize() {
	if r.CompanyName == "" {
		r.CompanyName = UnknownCompany
	}
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = StatusPending
	}
}

type CompanyRequestList struct {
	Users         []CompanyRequest `json:"users"`
	PendingCount  int              `json:"pending_count"`
	ApprovedCount int              `json:"approved_count"`
	RejectCount   int              `json:"reject_count"`
}

type RejectCompanyRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CompanyEmployee 超管视角的公司/员工条目
type CompanyEmployee struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	CompanyName   string `json:"company_name"`
	NoOfEmployees int    `json:"no_of_employees"`
	Type          string `json:"type"`
	CourseID      int64  `json:"course_id"`
}

type Employee struct {
	ID         int64  `json:"id,omitempty"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	Email      string `json:"email" binding:"required,email"`
	CellNumber string `json:"cell_number,omitempty"`
}

type CompanyProfile struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email" binding:"omitempty,email"`
	CellNumber  string `json:"cell_number"`
}

// Dashboard 首页统计
type Dashboard struct {
	TotalCompanies  int `json:"total_companies"`
	TotalEmployees  int `json:"total_employees"`
	TotalCourses    int `json:"total_courses"`
	TotalVideos     int `json:"total_videos"`
	PendingRequests int `json:"pending_requests"`
}

type Certificate struct {
	UserID   int64  `form:"user" binding:"required"`
	CourseID int64  `form:"course" binding:"required"`
	FileName string `form:"-"`
}
