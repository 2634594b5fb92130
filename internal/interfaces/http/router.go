package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"amlak/internal/application/permit/usecases"
	"amlak/internal/domain/shared/events"
	"amlak/internal/infrastructure/auth"
	"amlak/internal/infrastructure/config"
	"amlak/internal/infrastructure/email"
	"amlak/internal/infrastructure/notify"
	"amlak/internal/infrastructure/repository"
	permithandlers "amlak/internal/interfaces/http/handlers/permit"
	"amlak/internal/interfaces/http/middleware"
	"amlak/internal/interfaces/http/routes"
	"amlak/internal/shared/db"
	"amlak/internal/shared/logger"
	"amlak/internal/shared/utils"
)

// Router wires the HTTP surface: repositories, use cases, handlers and
// middleware.
type Router struct {
	engine          *gin.Engine
	permitHandler   *permithandlers.PermitHandler
	approvalHandler *permithandlers.ApprovalHandler
	authMiddleware  *middleware.AuthMiddleware
	sweepUC         *usecases.CheckDeadlinesUseCase
	allowedOrigins  []string
	log             logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gdb *gorm.DB, cfg *config.Config, publisher events.EventPublisher, log logger.Interface) *Router {
	engine := gin.New()

	permitRepo := repository.NewPermitRepository(gdb)
	workflowRepo := repository.NewWorkflowRepository(gdb)
	approvalRepo := repository.NewPendingApprovalRepository(gdb)
	recordRepo := repository.NewApprovalRecordRepository(gdb)
	notificationRepo := repository.NewNotificationRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)
	numberGen := repository.NewPermitNumberGenerator(gdb)

	txManager := db.NewTransactionManager(gdb)

	var emailSender notify.EmailSender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUsername,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}
	notifier := notify.NewWorkflowNotifier(notificationRepo, userRepo, emailSender, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	createPermitUC := usecases.NewCreatePermitUseCase(
		permitRepo, workflowRepo, approvalRepo, numberGen, txManager, notifier, publisher, log)
	decidePermitUC := usecases.NewDecidePermitUseCase(
		permitRepo, approvalRepo, recordRepo, txManager, notifier, publisher, log)
	getPermitUC := usecases.NewGetPermitUseCase(permitRepo, approvalRepo, recordRepo, log)
	listPermitsUC := usecases.NewListPermitsUseCase(permitRepo, log)
	sweepUC := usecases.NewCheckDeadlinesUseCase(
		approvalRepo, workflowRepo, permitRepo, userRepo, notifier, publisher, log)
	listPendingUC := usecases.NewListPendingApprovalsUseCase(
		approvalRepo, workflowRepo, permitRepo, sweepUC, log)

	permitHandler := permithandlers.NewPermitHandler(
		createPermitUC, decidePermitUC, getPermitUC, listPermitsUC)
	approvalHandler := permithandlers.NewApprovalHandler(listPendingUC, sweepUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:          engine,
		permitHandler:   permitHandler,
		approvalHandler: approvalHandler,
		authMiddleware:  authMiddleware,
		sweepUC:         sweepUC,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		log:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", nil)
	})

	routes.SetupPermitRoutes(r.engine, &routes.PermitRouteConfig{
		PermitHandler:   r.permitHandler,
		ApprovalHandler: r.approvalHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// SweepUseCase exposes the deadline sweep for the background scheduler.
func (r *Router) SweepUseCase() *usecases.CheckDeadlinesUseCase {
	return r.sweepUC
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
