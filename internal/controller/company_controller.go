package controller

import (
	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/util"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	CompanyService *service.CompanyService
}

func NewCompanyController(companyService *service.CompanyService) *CompanyController {
	return &CompanyController{CompanyService: companyService}
}

// ListRequests godoc
// @Summary 公司注册申请列表
// @Description status 可选 all/pending/approved/rejected，统计数字不受过滤影响
// @Tags 公司
// @Produce json
// @Param status query string false "状态"
// @Success 200 {object} util.Response{data=model.CompanyRequestList}
// @Security ApiKeyAuth
// @Router /company-requests [get]
func (c *CompanyController) ListRequests(ctx *gin.Context) {
	list, err := c.CompanyService.ListRequests(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Reject godoc
// @Summary 拒绝公司注册申请
// @Tags 公司
// @Accept json
// @Produce json
// @Param body body model.RejectCompanyRequest true "公司邮箱"
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /company-requests/reject [post]
func (c *CompanyController) Reject(ctx *gin.Context) {
	var req model.RejectCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.CompanyService.Reject(ctx.Request.Context(), req.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// Dashboard godoc
// @Summary 首页统计
// @Tags 公司
// @Produce json
// @Success 200 {object} util.Response{data=model.Dashboard}
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (c *CompanyController) Dashboard(ctx *gin.Context) {
	d, err := c.CompanyService.Dashboard(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// Companies godoc
// @Summary 公司及员工列表
// @Tags 公司
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CompanyEmployee}
// @Security ApiKeyAuth
// @Router /companies [get]
func (c *CompanyController) Companies(ctx *gin.Context) {
	list, err := c.CompanyService.ListCompanies(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary 员工列表
// @Tags 员工
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Employee}
// @Security ApiKeyAuth
// @Router /employees [get]
func (c *CompanyController) Employees(ctx *gin.Context) {
	list, err := c.CompanyService.ListEmployees(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary 添加员工
// @Tags 员工
// @Accept json
// @Produce json
// @Param body body model.Employee true "员工信息"
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /employees [post]
func (c *CompanyController) AddEmployee(ctx *gin.Context) {
	var emp model.Employee
	if err := ctx.ShouldBindJSON(&emp); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.CompanyService.AddEmployee(ctx.Request.Context(), emp)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// @Summary 更新员工
// @Tags 员工
// @Accept json
// @Produce json
// @Param id path int true "员工ID"
// @Param body body model.Employee true "员工信息"
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /employees/{id} [put]
func (c *CompanyController) UpdateEmployee(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var emp model.Employee
	if err := ctx.ShouldBindJSON(&emp); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.CompanyService.UpdateEmployee(ctx.Request.Context(), id, emp)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// @Summary 公司资料
// @Tags 公司
// @Produce json
// @Success 200 {object} util.Response{data=model.CompanyProfile}
// @Security ApiKeyAuth
// @Router /profile [get]
func (c *CompanyController) Profile(ctx *gin.Context) {
	profile, err := c.CompanyService.GetProfile(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 更新公司资料
// @Tags 公司
// @Accept json
// @Produce json
// @Param body body model.CompanyProfile true "公司资料"
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /profile [put]
func (c *CompanyController) UpdateProfile(ctx *gin.Context) {
	var profile model.CompanyProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.CompanyService.UpdateProfile(ctx.Request.Context(), profile)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// @Summary 订阅套餐
// @Tags 订阅
// @Produce json
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /subscription-plan [get]
func (c *CompanyController) SubscriptionPlan(ctx *gin.Context) {
	plan, err := c.CompanyService.SubscriptionPlan(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}
