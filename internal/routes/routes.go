package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/seacatering/catering-api/internal/audit"
	"github.com/seacatering/catering-api/internal/auth"
	"github.com/seacatering/catering-api/internal/config"
	"github.com/seacatering/catering-api/internal/handlers"
	infraRepo "github.com/seacatering/catering-api/internal/infra/repository"
	"github.com/seacatering/catering-api/internal/middleware"
	ucSubscription "github.com/seacatering/catering-api/internal/usecase/subscription"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(db)

	tokens := auth.NewTokenService(cfg)
	refreshStore := auth.NewRefreshStore(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SUBSCRIPTIONS
	// ======================================================
	createSubscriptionUC := ucSubscription.NewCreateSubscription(
		subscriptionRepo,
		auditDispatcher,
	)

	updateStatusUC := ucSubscription.NewUpdateSubscriptionStatus(
		subscriptionRepo,
		auditDispatcher,
	)

	getSubscriptionUC := ucSubscription.NewGetSubscription(subscriptionRepo)
	listSubscriptionsUC := ucSubscription.NewListUserSubscriptions(subscriptionRepo)
	listAllSubscriptionsUC := ucSubscription.NewListAllSubscriptions(subscriptionRepo)
	statsUC := ucSubscription.NewGetSubscriptionStats(subscriptionRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokens, refreshStore)
	userHandler := handlers.NewUserHandler(db)
	mealPlanHandler := handlers.NewMealPlanHandler(db, auditDispatcher)
	testimonialHandler := handlers.NewTestimonialHandler(db, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		createSubscriptionUC,
		updateStatusUC,
		getSubscriptionUC,
		listSubscriptionsUC,
		listAllSubscriptionsUC,
		statsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/csrf-token", authHandler.CSRFToken)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/meal-plans", mealPlanHandler.List)
		api.GET("/meal-plans/:id", mealPlanHandler.GetByID)
		api.GET("/testimonials", testimonialHandler.List)
		api.POST("/testimonials", middleware.CSRFProtection(), testimonialHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens), middleware.CSRFProtection())
		{
			secured.GET("/users/profile", userHandler.GetProfile)
			secured.PUT("/users/profile", userHandler.UpdateProfile)

			secured.POST("/subscriptions", subscriptionHandler.Create)
			secured.GET("/my-subscriptions", subscriptionHandler.ListMine)
			secured.GET("/subscriptions/:id", subscriptionHandler.GetByID)
			secured.PUT("/subscriptions/:id/status", subscriptionHandler.UpdateStatus)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", userHandler.List)

				admin.POST("/meal-plans", mealPlanHandler.Create)
				admin.PUT("/meal-plans/:id", mealPlanHandler.Update)
				admin.DELETE("/meal-plans/:id", mealPlanHandler.Delete)

				admin.PUT("/testimonials/:id/approval", testimonialHandler.UpdateApproval)
				admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

				admin.GET("/admin/meal-plans", mealPlanHandler.List)
				admin.GET("/admin/meal-plans/:id", mealPlanHandler.GetByID)
				admin.GET("/admin/testimonials", testimonialHandler.List)
				admin.GET("/admin/subscriptions", subscriptionHandler.AdminList)
				admin.GET("/admin/subscriptions/stats", subscriptionHandler.AdminStats)
				admin.GET("/admin/dashboard/stats", dashboardHandler.Stats)
				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
