// Package session 在 context 中传递管理员的访问令牌。
// 令牌只检查是否存在，不在本服务内校验或刷新。
package session

import (
	"context"
	"strings"
)

type tokenKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token 返回当前请求的令牌，不存在时返回空串
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

func HasToken(ctx context.Context) bool {
	return Token(ctx) != ""
}

// FromHeader 解析 Authorization 头，兼容不带 Bearer 前缀的写法
func FromHeader(header string) string {
	token := strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(token, " "); ok && strings.EqualFold(scheme, "bearer") {
		token = strings.TrimSpace(rest)
	} else if strings.EqualFold(token, "bearer") {
		token = ""
	}
	// 前端在未登录时可能发送字面量 "null"/"undefined"
	if token == "null" || token == "undefined" {
		return ""
	}
	return token
}
