package app

import (
	"cyberedu_admin/docs"
	"cyberedu_admin/internal/middleware"
	"cyberedu_admin/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要令牌的管理接口
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		a.registerCompanyRoutes(authGroup, c)
		a.registerCourseRoutes(authGroup, c)
		a.registerResultRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/send-otp", c.auth.SendOTP)
			auth.POST("/verify-otp", c.auth.VerifyOTP)
			auth.POST("/login", c.auth.Login)
			auth.POST("/set-password", c.auth.SetPassword)
		}

		public.POST("/subscriptions", c.auth.CreateSubscription)
		public.POST("/subscriptions/verify", c.auth.VerifySubscription)
	}
}

func (a *App) registerCompanyRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/dashboard", c.company.Dashboard)
	rg.GET("/company-requests", c.company.ListRequests)
	rg.POST("/company-requests/reject", c.company.Reject)
	rg.GET("/companies", c.company.Companies)

	rg.GET("/employees", c.company.Employees)
	rg.POST("/employees", c.company.AddEmployee)
	rg.PUT("/employees/:id", c.company.UpdateEmployee)

	rg.GET("/profile", c.company.Profile)
	rg.PUT("/profile", c.company.UpdateProfile)
	rg.GET("/subscription-plan", c.company.SubscriptionPlan)
}

func (a *App) registerCourseRoutes(rg *gin.RouterGroup, c *controllers) {
	courses := rg.Group("/courses")
	{
		courses.GET("", c.course.List)
		courses.POST("", c.course.Create)
		courses.PUT("/:id", c.course.Update)
		courses.DELETE("/:id", c.course.Delete)

		courses.GET("/:id/questions", c.course.Questions)
		courses.POST("/:id/questions", c.course.CreateQuestion)

		courses.GET("/:id/videos", c.video.List)
		courses.POST("/:id/videos", c.video.Upload)
	}

	rg.DELETE("/videos/:id", c.video.Delete)
	rg.POST("/media/probe", c.video.Probe)
}

func (a *App) registerResultRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/users/:id/results", c.result.Results)
	rg.GET("/users/:id/results/export", c.result.Export)
	rg.POST("/certificates", c.result.UploadCertificate)
}
