// Package docs 注册 swagger 文档，由 swag init 重新生成
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["系统"], "summary": "健康检查", "responses": {"200": {"description": "OK"}, "503": {"description": "Service degraded"}}}},
        "/auth/send-otp": {"post": {"tags": ["认证"], "summary": "发送验证码", "responses": {"200": {"description": "OK"}}}},
        "/auth/verify-otp": {"post": {"tags": ["认证"], "summary": "校验验证码", "responses": {"200": {"description": "OK"}}}},
        "/auth/login": {"post": {"tags": ["认证"], "summary": "管理员登录", "responses": {"200": {"description": "OK"}}}},
        "/auth/set-password": {"post": {"tags": ["认证"], "summary": "设置密码", "responses": {"200": {"description": "OK"}}}},
        "/subscriptions": {"post": {"tags": ["订阅"], "summary": "创建订阅", "responses": {"200": {"description": "OK"}}}},
        "/subscriptions/verify": {"post": {"tags": ["订阅"], "summary": "确认订阅", "responses": {"200": {"description": "OK"}}}},
        "/dashboard": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["企业"], "summary": "仪表盘统计", "responses": {"200": {"description": "OK"}}}},
        "/company-requests": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["企业"], "summary": "企业申请列表", "responses": {"200": {"description": "OK"}}}},
        "/company-requests/reject": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["企业"], "summary": "拒绝企业申请", "responses": {"200": {"description": "OK"}}}},
        "/companies": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["企业"], "summary": "企业列表", "responses": {"200": {"description": "OK"}}}},
        "/employees": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["员工"], "summary": "员工列表", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["员工"], "summary": "添加员工", "responses": {"200": {"description": "OK"}}}
        },
        "/employees/{id}": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["员工"], "summary": "更新员工", "responses": {"200": {"description": "OK"}}}},
        "/profile": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["企业"], "summary": "企业资料", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["企业"], "summary": "更新企业资料", "responses": {"200": {"description": "OK"}}}
        },
        "/subscription-plan": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["订阅"], "summary": "订阅方案", "responses": {"200": {"description": "OK"}}}},
        "/courses": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["课程"], "summary": "课程列表", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["课程"], "summary": "创建课程", "responses": {"200": {"description": "OK"}}}
        },
        "/courses/{id}": {
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["课程"], "summary": "更新课程", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["课程"], "summary": "删除课程", "responses": {"200": {"description": "OK"}}}
        },
        "/courses/{id}/questions": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "课程题目", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["题目"], "summary": "创建题目", "responses": {"200": {"description": "OK"}}}
        },
        "/courses/{id}/videos": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["视频"], "summary": "课程视频（含时长与缩略图）", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["视频"], "summary": "上传视频", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}}}
        },
        "/videos/{id}": {"delete": {"security": [{"ApiKeyAuth": []}], "tags": ["视频"], "summary": "删除视频", "responses": {"200": {"description": "OK"}}}},
        "/media/probe": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["视频"], "summary": "本地视频提取时长与缩略图", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}}}},
        "/users/{id}/results": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["成绩"], "summary": "用户答题结果", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}/results/export": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["成绩"], "summary": "导出成绩 Excel", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "OK"}}}},
        "/certificates": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["成绩"], "summary": "上传证书", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "CyberEdu 管理后台 API",
	Description:      "CyberEdu 管理后台网关，代理平台后端并补充视频元数据与成绩统计。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
