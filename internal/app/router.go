package app

import (
	"gradebook_backend/docs"
	"gradebook_backend/internal/config"
	"gradebook_backend/internal/middleware"
	"gradebook_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. public routes
	a.registerPublicRoutes(router, c)

	// 2. routes behind a session
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(s.auth, cfg.Session.CookieName))
	{
		a.registerCourseRoutes(authGroup, c)
	}

	// 3. admin routes
	a.registerAdminRoutes(router, c, s, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/login", c.auth.LoginPage)
		public.POST("/login", c.auth.Login)
		public.POST("/logout", c.auth.Logout)
	}
}

func (a *App) registerCourseRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.profile.GetProfile)
	rg.GET("/uploads/*filename", c.upload.Download)

	assignments := rg.Group("/assignments")
	{
		assignments.GET("", c.assignment.ListAssignments)
		assignments.GET("/:id", c.assignment.GetAssignment)
		assignments.POST("/:id/submit", middleware.RequireStudent(), c.assignment.Submit)

		grading := assignments.Group("/:id")
		grading.Use(middleware.RequireTAOrAdmin())
		{
			grading.GET("/submissions", c.assignment.ListSubmissions)
			grading.POST("/grade", c.assignment.Grade)
		}
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(s.auth, cfg.Session.CookieName), middleware.RequireAdmin())
	{
		admin.POST("/assignments", c.admin.CreateAssignment)
		admin.GET("/users", c.admin.ListUsers)
		admin.POST("/users", c.admin.CreateUser)
	}
}
