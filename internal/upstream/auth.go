package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"cyberedu_admin/internal/model"
)

// SendOTPResult 后端返回的验证令牌，用于随后的 VerifyOTP
type SendOTPResult struct {
	VerificationToken string `json:"verification_token"`
}

func (c *Client) SendOTP(ctx context.Context, req model.SendOTPRequest) (*Result[SendOTPResult], error) {
	return doJSON[SendOTPResult](ctx, c, call{
		op:       "send_otp",
		method:   http.MethodPost,
		path:     "/send-otp/",
		fallback: "Something went wrong while sending OTP.",
	}, req)
}

// VerifyOTP 使用 SendOTP 返回的验证令牌而不是登录令牌
func (c *Client) VerifyOTP(ctx context.Context, req model.VerifyOTPRequest, verificationToken string) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "verify_otp",
		method:   http.MethodPost,
		path:     "/verify-otp/",
		token:    verificationToken,
		fallback: "Something went wrong while verifying OTP.",
	}, req)
}

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*Result[model.LoginResult], error) {
	return doJSON[model.LoginResult](ctx, c, call{
		op:       "login",
		method:   http.MethodPost,
		path:     "/login/",
		fallback: "Something went wrong during login.",
	}, req)
}

func (c *Client) CreateSubscription(ctx context.Context, email string) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "create_subscription",
		method:   http.MethodPost,
		path:     "/create-subscription/",
		fallback: "Something went wrong while creating subscription.",
	}, map[string]string{"email": email})
}

func (c *Client) VerifySubscription(ctx context.Context, req model.SubscriptionRequest) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "verify_subscription",
		method:   http.MethodPost,
		path:     "/subscription/",
		fallback: "Something went wrong while verifying subscription.",
	}, req)
}

func (c *Client) SetPassword(ctx context.Context, req model.SetPasswordRequest) (*Result[json.RawMessage], error) {
	return doJSON[json.RawMessage](ctx, c, call{
		op:       "set_password",
		method:   http.MethodPost,
		path:     "/set-password/",
		fallback: "Something went wrong while resetting password.",
	}, req)
}
