package controller

import (
	"bytes"
	"fmt"
	"net/http"

	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// Results godoc
// @Summary 员工测验成绩
// @Description 逐题作答、总分与各课程得分
// @Tags 成绩
// @Produce json
// @Param id path int true "员工ID"
// @Success 200 {object} util.Response{data=model.UserResults}
// @Security ApiKeyAuth
// @Router /users/{id}/results [get]
func (c *ResultController) Results(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	results, err := c.ResultService.UserResults(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// Export godoc
// @Summary 导出员工成绩
// @Tags 成绩
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "员工ID"
// @Success 200 {file} file
// @Security ApiKeyAuth
// @Router /users/{id}/results/export [get]
func (c *ResultController) Export(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	// 先写入内存，出错时还能返回 JSON
	var buf bytes.Buffer
	if err := c.ResultService.Export(ctx.Request.Context(), userID, &buf); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"results_user_%d.xlsx\"", userID))
	ctx.Data(http.StatusOK, util.MimeXLSX, buf.Bytes())
}

// UploadCertificate godoc
// @Summary 上传结业证书
// @Tags 成绩
// @Accept multipart/form-data
// @Produce json
// @Param user formData int true "员工ID"
// @Param course formData int true "课程ID"
// @Param pdf_file formData file true "PDF 证书"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "文件不合法"
// @Security ApiKeyAuth
// @Router /certificates [post]
func (c *ResultController) UploadCertificate(ctx *gin.Context) {
	var cert model.Certificate
	if err := ctx.ShouldBind(&cert); err != nil {
		bindError(ctx, err)
		return
	}
	fh, err := ctx.FormFile("pdf_file")
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidPDF.Error())
		return
	}

	res, err := c.ResultService.UploadCertificate(ctx.Request.Context(), cert, fh)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}
