package handlers

import (
	"time"

	"github.com/SscSPs/bank_backoffice_app/cmd/docs"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/middleware"
	"github.com/SscSPs/bank_backoffice_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteDeps carries the infrastructure the routes need besides the services.
type RouteDeps struct {
	// LoginLimit throttles /auth/login. Nil disables throttling.
	LoginLimit gin.HandlerFunc
	// DB is pinged by /health. Nil reports the API alone.
	DB Pinger
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", getHealth(deps.DB))

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	loginLimit := deps.LoginLimit
	if loginLimit == nil {
		loginLimit = func(c *gin.Context) { c.Next() }
	}

	public := r.Group("/api/v1")
	registerAuthRoutes(public, services, loginLimit)

	// Everything below requires a valid bearer token.
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	v1.POST("/auth/change-password", NewAuthHandler(services.User, services.Token).ChangePassword)
	registerProfileRoutes(v1, services.User, cfg.MaxUploadBytes)
	registerCustomerRoutes(v1, services)
	registerTransactionRoutes(v1, services.Transaction, cfg.MaxUploadBytes)
	registerOfficeRoutes(v1, services)

	admin := v1.Group("", middleware.RequireRoles(domain.RoleAdmin))
	registerUserRoutes(admin, services.User)
	registerLogRoutes(admin, services.Audit)

	management := v1.Group("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager))
	registerEmployeeRoutes(management, services.Employee)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
