package controller

import (
	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/session"
	"cyberedu_admin/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// SendOTP godoc
// @Summary 发送验证码
// @Description 向公司管理员邮箱发送一次性验证码，返回 verification_token
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body model.SendOTPRequest true "邮箱"
// @Success 200 {object} util.Response{data=upstream.SendOTPResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /auth/send-otp [post]
func (c *AuthController) SendOTP(ctx *gin.Context) {
	var req model.SendOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.AuthService.SendOTP(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// VerifyOTP godoc
// @Summary 校验验证码
// @Description Authorization 头携带 SendOTP 返回的 verification_token
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body model.VerifyOTPRequest true "邮箱与验证码"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /auth/verify-otp [post]
func (c *AuthController) VerifyOTP(ctx *gin.Context) {
	var req model.VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}
	verificationToken := session.FromHeader(ctx.GetHeader("Authorization"))
	if verificationToken == "" {
		util.BadRequest(ctx, "verification token is required")
		return
	}

	res, err := c.AuthService.VerifyOTP(ctx.Request.Context(), req, verificationToken)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// Login godoc
// @Summary 管理员登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body model.LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=model.LoginResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req model.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.AuthService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// SetPassword godoc
// @Summary 设置密码
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body model.SetPasswordRequest true "邀请令牌与新密码"
// @Success 200 {object} util.Response
// @Router /auth/set-password [post]
func (c *AuthController) SetPassword(ctx *gin.Context) {
	var req model.SetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.AuthService.SetPassword(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// CreateSubscription godoc
// @Summary 创建订阅
// @Tags 订阅
// @Accept  json
// @Produce  json
// @Param   body body model.SubscriptionRequest true "邮箱"
// @Success 200 {object} util.Response
// @Router /subscriptions [post]
func (c *AuthController) CreateSubscription(ctx *gin.Context) {
	var req model.SubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.AuthService.CreateSubscription(ctx.Request.Context(), req.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// VerifySubscription godoc
// @Summary 校验订阅
// @Tags 订阅
// @Accept  json
// @Produce  json
// @Param   body body model.SubscriptionRequest true "邮箱与订阅 ID"
// @Success 200 {object} util.Response
// @Router /subscriptions/verify [post]
func (c *AuthController) VerifySubscription(ctx *gin.Context) {
	var req model.SubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}
	if req.SubscriptionID == "" {
		util.BadRequest(ctx, "subscription_id is required")
		return
	}

	res, err := c.AuthService.VerifySubscription(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}
