// Package validation 注册请求 DTO 使用的自定义校验标签
package validation

import (
	"reflect"
	"strings"

	"cyberedu_admin/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagNotBlank          = "notblank"
	TagExactlyOneCorrect = "exactlyonecorrect"
)

// Register 挂到 gin 的默认校验器上，启动时调用一次
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation(TagNotBlank, notBlank); err != nil {
		return err
	}
	return v.RegisterValidation(TagExactlyOneCorrect, exactlyOneCorrect)
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// exactlyOneCorrect 选项中必须恰好一个正确答案
func exactlyOneCorrect(fl validator.FieldLevel) bool {
	options, ok := fl.Field().Interface().([]model.QuestionOption)
	if !ok {
		return false
	}
	return CountCorrect(options) == 1
}

func CountCorrect(options []model.QuestionOption) int {
	n := 0
	for _, opt := range options {
		if opt.IsCorrect {
			n++
		}
	}
	return n
}

// Message 把校验错误转换成面向管理员的提示
func Message(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	fe := errs[0]
	switch fe.Tag() {
	case TagExactlyOneCorrect:
		return "Please select exactly one correct answer"
	case TagNotBlank:
		return "Please fill in all fields"
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " entries"
	}
	return fe.Error()
}
