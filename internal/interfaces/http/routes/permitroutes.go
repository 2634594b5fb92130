package routes

import (
	"github.com/gin-gonic/gin"

	permithandlers "amlak/internal/interfaces/http/handlers/permit"
	"amlak/internal/interfaces/http/middleware"
)

type PermitRouteConfig struct {
	PermitHandler   *permithandlers.PermitHandler
	ApprovalHandler *permithandlers.ApprovalHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupPermitRoutes(engine *gin.Engine, config *PermitRouteConfig) {
	permits := engine.Group("/permits")
	permits.Use(config.AuthMiddleware.RequireAuth())
	{
		permits.POST("",
			config.PermitHandler.CreatePermit)
		permits.GET("",
			config.PermitHandler.ListPermits)

		// Specific action endpoints must come BEFORE /:id to avoid conflicts
		permits.POST("/:id/decision",
			config.PermitHandler.DecidePermit)

		permits.GET("/:id",
			config.PermitHandler.GetPermit)
	}

	approvals := engine.Group("/approvals")
	approvals.Use(config.AuthMiddleware.RequireAuth())
	{
		approvals.GET("/pending",
			config.ApprovalHandler.ListPendingApprovals)
		approvals.POST("/sweep",
			config.AuthMiddleware.RequireStaff(),
			config.ApprovalHandler.SweepDeadlines)
	}
}
