package controller

import (
	"context"
	"errors"
	"net/http"

	"cyberedu_admin/internal/media"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/upstream"
	"cyberedu_admin/internal/util"
	"cyberedu_admin/internal/validation"

	"github.com/gin-gonic/gin"
)

// respondError 把各层错误映射成统一响应
func respondError(ctx *gin.Context, err error) {
	var (
		apiErr       *upstream.APIError
		transportErr *upstream.TransportError
		inputErr     *service.InputError
		mediaErr     *media.ValidationError
	)

	switch {
	case errors.As(err, &apiErr):
		util.Error(ctx, apiErr.HTTPStatus(), apiErr.Message)
	case errors.As(err, &inputErr):
		util.BadRequest(ctx, inputErr.Reason)
	case errors.As(err, &mediaErr):
		util.BadRequest(ctx, mediaErr.Reason)
	case errors.Is(err, util.ErrInvalidID), errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		util.Error(ctx, http.StatusGatewayTimeout, "Backend request timed out")
	case errors.As(err, &transportErr), errors.Is(err, service.ErrNoAccessToken):
		_ = ctx.Error(err)
		util.BadGateway(ctx, "Backend unavailable")
	default:
		util.LogInternalError(ctx, err)
	}
}

// bindError 请求体校验失败
func bindError(ctx *gin.Context, err error) {
	util.BadRequest(ctx, validation.Message(err))
}

func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := util.ParseID(ctx.Param(name))
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return id, true
}
