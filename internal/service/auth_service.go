package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/upstream"
)

// AdminLoginType 后端用 type 区分管理员与员工登录
const AdminLoginType = "admin"

var ErrNoAccessToken = errors.New("login response has no access token")

type AuthService struct {
	client *upstream.Client
}

func NewAuthService(client *upstream.Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) SendOTP(ctx context.Context, req model.SendOTPRequest) (*upstream.Result[upstream.SendOTPResult], error) {
	req.Email = strings.TrimSpace(req.Email)
	return s.client.SendOTP(ctx, req)
}

func (s *AuthService) VerifyOTP(ctx context.Context, req model.VerifyOTPRequest, verificationToken string) (*upstream.Result[json.RawMessage], error) {
	req.Email = strings.TrimSpace(req.Email)
	req.OTP = strings.TrimSpace(req.OTP)
	return s.client.VerifyOTP(ctx, req, verificationToken)
}

// Login 总是以管理员身份登录，返回后端签发的 access_token
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*upstream.Result[model.LoginResult], error) {
	req.Type = AdminLoginType
	req.Email = strings.TrimSpace(req.Email)

	res, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if res.Data.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	return res, nil
}

func (s *AuthService) CreateSubscription(ctx context.Context, email string) (*upstream.Result[json.RawMessage], error) {
	return s.client.CreateSubscription(ctx, strings.TrimSpace(email))
}

func (s *AuthService) VerifySubscription(ctx context.Context, req model.SubscriptionRequest) (*upstream.Result[json.RawMessage], error) {
	req.Email = strings.TrimSpace(req.Email)
	return s.client.VerifySubscription(ctx, req)
}

func (s *AuthService) SetPassword(ctx context.Context, req model.SetPasswordRequest) (*upstream.Result[json.RawMessage], error) {
	return s.client.SetPassword(ctx, req)
}
