package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tally-service/internal/models"
	"tally-service/internal/server/handlers"
	"tally-service/internal/server/middleware"
	"tally-service/internal/service"
)

// Handlers bundles everything SetupRoutes wires up.
type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Candidate  *handlers.CandidateHandler
	Submission *handlers.SubmissionHandler
	Report     *handlers.ReportHandler
	Incident   *handlers.IncidentHandler
	Config     *handlers.ConfigHandler
	Upload     *handlers.UploadHandler
	Ws         *handlers.WsHandler
}

// SetupRoutes configures all the routes for the application.
func SetupRoutes(router *gin.Engine, h Handlers, authService *service.AuthService, jwtSecret string) {
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", h.Auth.Login)
	}

	// Protected routes (require JWT authentication; the profile row is
	// re-read on every request so disabled accounts drop out immediately)
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtSecret, authService))
	{
		protected.GET("/profile", h.Auth.GetProfile)
		protected.PUT("/profile", h.Auth.UpdateProfile)

		protected.GET("/config/districts", h.Config.ListDistricts)
		protected.GET("/config/positions", h.Config.ListPositions)

		protected.GET("/candidates", h.Candidate.List)

		protected.POST("/submissions", h.Submission.Create)
		protected.GET("/submissions", h.Submission.List)

		protected.GET("/totals", h.Report.Totals)
		protected.GET("/reports/export", h.Report.ExportCSV)

		protected.POST("/incidents", h.Incident.Create)
		protected.GET("/incidents", h.Incident.List)

		protected.POST("/uploads", h.Upload.Upload)

		protected.GET("/ws", h.Ws.Subscribe)
	}

	// Admin routes (admin or superadmin)
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuth(jwtSecret, authService))
	admin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin))
	{
		admin.POST("/users", h.User.CreateUser)
		admin.GET("/users", h.User.ListUsers)
		admin.PUT("/users/:id", h.User.UpdateUser)
		admin.DELETE("/users/:id", h.User.DeleteUser)

		admin.POST("/candidates", h.Candidate.Create)
		admin.PUT("/candidates/:id", h.Candidate.Update)
		admin.DELETE("/candidates/:id", h.Candidate.Delete)

		admin.PUT("/submissions/:id/approve", h.Submission.Approve)
		admin.PUT("/submissions/:id/reject", h.Submission.Reject)

		admin.PUT("/incidents/:id/resolve", h.Incident.Resolve)
	}

	// Superadmin routes (global configuration)
	super := router.Group("/api/v1/admin/config")
	super.Use(middleware.JWTAuth(jwtSecret, authService))
	super.Use(middleware.RequireRoles(models.RoleSuperadmin))
	{
		super.POST("/districts", h.Config.CreateDistrict)
		super.PUT("/districts/:id", h.Config.UpdateDistrict)
		super.DELETE("/districts/:id", h.Config.DeleteDistrict)

		super.POST("/positions", h.Config.CreatePosition)
		super.PUT("/positions/:id", h.Config.UpdatePosition)
		super.DELETE("/positions/:id", h.Config.DeletePosition)
	}
}
