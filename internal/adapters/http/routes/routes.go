package routes

import (
	"mams-backend/internal/adapters/http/handlers"
	"mams-backend/internal/adapters/http/middleware"
	"mams-backend/internal/adapters/persistence/repositories"
	"mams-backend/internal/config"
	"mams-backend/internal/core/domain"
	"mams-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	baseRepo := repositories.NewBaseRepository(db)
	equipmentRepo := repositories.NewEquipmentRepository(db)
	transferRepo := repositories.NewTransferRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	expenditureRepo := repositories.NewExpenditureRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	transferService := services.NewTransferService(transferRepo, baseRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, expenditureRepo)
	dashboardService := services.NewDashboardService(
		equipmentRepo, purchaseRepo, transferRepo, assignmentRepo, expenditureRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userRepo)
	baseHandler := handlers.NewBaseHandler(baseRepo)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentRepo)
	transferHandler := handlers.NewTransferHandler(transferService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API group
	api := app.Group("/api")
	api.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Every data route requires a verified token; mutation and read routes
	// additionally require the matching capability. Client-side gating is a
	// convenience, never the enforcement point.
	auth := middleware.AuthMiddleware(cfg)

	// Base routes
	baseRoutes := api.Group("/bases", auth)
	baseRoutes.Get("/", middleware.RequireCapability(domain.CapViewAll), baseHandler.List)
	baseRoutes.Post("/", middleware.RequireCapability(domain.CapManageAll), baseHandler.Create)

	// Equipment routes
	equipmentRoutes := api.Group("/equipment", auth)
	equipmentRoutes.Get("/", middleware.RequireCapability(domain.CapViewEquipment), equipmentHandler.List)
	equipmentRoutes.Post("/", middleware.RequireCapability(domain.CapManageEquipment), equipmentHandler.Create)

	// Transfer routes
	transferRoutes := api.Group("/transfers", auth)
	transferRoutes.Get("/", middleware.RequireCapability(domain.CapViewAll), transferHandler.List)
	transferRoutes.Post("/", middleware.RequireCapability(domain.CapManageAll), transferHandler.Create)

	// Purchase routes
	purchaseRoutes := api.Group("/purchases", auth, middleware.RequireCapability(domain.CapRecordPurchase))
	purchaseRoutes.Get("/", purchaseHandler.List)
	purchaseRoutes.Post("/", purchaseHandler.Create)
	purchaseRoutes.Put("/:id/status", purchaseHandler.UpdateStatus)

	// Assignment & expenditure routes
	assignmentRoutes := api.Group("/assignments", auth, middleware.RequireCapability(domain.CapAssignEquipment))
	assignmentRoutes.Get("/", assignmentHandler.ListAssignments)
	assignmentRoutes.Post("/", assignmentHandler.CreateAssignment)
	assignmentRoutes.Put("/:id/return", assignmentHandler.ReturnAssignment)

	expenditureRoutes := api.Group("/expenditures", auth, middleware.RequireCapability(domain.CapAssignEquipment))
	expenditureRoutes.Get("/", assignmentHandler.ListExpenditures)
	expenditureRoutes.Post("/", assignmentHandler.CreateExpenditure)

	// Dashboard routes
	dashboardRoutes := api.Group("/dashboard", auth, middleware.RequireCapability(domain.CapViewReports))
	dashboardRoutes.Get("/metrics", dashboardHandler.GetMetrics)

	// User management routes (Admin only)
	userRoutes := api.Group("/users", auth, middleware.RequireCapability(domain.CapManageAll))
	userRoutes.Get("/", userHandler.ListUsers)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, rate-limited against brute force
	router.Post("/signup", middleware.AuthRateLimiter(), handler.Signup)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Get("/permissions", middleware.AuthMiddleware(cfg), handler.Permissions)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}
