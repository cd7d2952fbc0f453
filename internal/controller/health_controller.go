package controller

import (
	"context"
	"net/http"
	"time"

	"cyberedu_admin/internal/util"

	"github.com/gin-gonic/gin"
)

// HealthCheck 单个依赖的探测函数，返回 nil 表示可用
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Checks map[string]HealthCheck
}

func NewHealthController(checks map[string]HealthCheck) *HealthController {
	return &HealthController{Checks: checks}
}

// @Summary 健康检查
// @Description 检查 ffmpeg、缓存等依赖状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	components := gin.H{}
	healthy := true
	for name, check := range c.Checks {
		if err := check(reqCtx); err != nil {
			components[name] = "down: " + err.Error()
			healthy = false
			continue
		}
		components[name] = "up"
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Service degraded",
			Data:    gin.H{"status": "degraded", "components": components},
		})
		return
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
