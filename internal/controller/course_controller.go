package controller

import (
	"cyberedu_admin/internal/model"
	"cyberedu_admin/internal/service"
	"cyberedu_admin/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// List godoc
// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Security ApiKeyAuth
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.CourseService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Create godoc
// @Summary 新建课程
// @Tags 课程
// @Accept json
// @Produce json
// @Param body body model.CourseRequest true "课程"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "课程名不能为空"
// @Security ApiKeyAuth
// @Router /courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req model.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.CourseService.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// Update godoc
// @Summary 更新课程
// @Tags 课程
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Param body body model.CourseRequest true "课程"
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req model.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.CourseService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// Delete godoc
// @Summary 删除课程
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Security ApiKeyAuth
// @Router /courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	res, err := c.CourseService.Delete(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}

// Questions godoc
// @Summary 课程测验题
// @Description 只返回视频已全部上传完成的课程的题目
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Security ApiKeyAuth
// @Router /courses/{id}/questions [get]
func (c *CourseController) Questions(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	questions, err := c.CourseService.Questions(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// CreateQuestion godoc
// @Summary 新建测验题
// @Description 至少两个选项，且恰好一个正确答案
// @Tags 课程
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Param body body model.QuestionRequest true "题目"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "题目不合法"
// @Security ApiKeyAuth
// @Router /courses/{id}/questions [post]
func (c *CourseController) CreateQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req model.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	res, err := c.CourseService.CreateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, res.Message, res.Data)
}
