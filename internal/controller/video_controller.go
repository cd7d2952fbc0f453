package controller

import (
	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	VideoService *service.VideoService
}

func NewVideoController(videoService *service.VideoService) *VideoController {
	return &VideoController{VideoService: videoService}
}

// List godoc
// @Summary 课程视频列表
// @Description 附带提取出的时长与缩略图，提取失败的字段为 null
// @Tags 视频
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.VideoAsset}
// @Security ApiKeyAuth
// @Router /courses/{id}/videos [get]
func (c *VideoController) List(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	videos, err := c.VideoService.ListByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, videos)
}

// Upload godoc
// @Summary 上传视频
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "课程ID"
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param is_course_video_upload_completed formData bool false "课程视频是否已全部上传"
// @Param video formData file true "视频文件"
// @Success 200 {object} util.Response{data=model.UploadedVideo}
// @Failure 400 {object} util.Response "文件不合法"
// @Security ApiKeyAuth
// @Router /courses/{id}/videos [post]
func (c *VideoController) Upload(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var form model.VideoUpload
	if err := ctx.ShouldBind(&form); err != nil {
		bindError(ctx, err)
		return
	}
	form.CourseID = courseID

	fh, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "Please select a valid video file")
		return
	}

	res, err := c.VideoService.Upload(ctx.Request.Context(), form, fh)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// Delete godoc
// @Summary 删除视频
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /videos/{id} [delete]
func (c *VideoController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	res, err := c.VideoService.Delete(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// Probe godoc
// @Summary 预览视频元数据
// @Description 提取时长与缩略图，不上传到后端
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Param video formData file true "视频文件"
// @Success 200 {object} util.Response{data=model.VideoProbe}
// @Security ApiKeyAuth
// @Router /media/probe [post]
func (c *VideoController) Probe(ctx *gin.Context) {
	fh, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "Please select a valid video file")
		return
	}

	out, err := c.VideoService.Probe(ctx.Request.Context(), fh)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}
