package v1

import (
	"net/http"
	"time"

	"alumni-directory-backend/config"
	"alumni-directory-backend/internal/delivery/http/middleware"
	"alumni-directory-backend/internal/delivery/http/response"
	"alumni-directory-backend/internal/domain"
	"alumni-directory-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AccountUC domain.AccountUsecase
	CommandUC domain.AlumniCommandUsecase
	QueryUC   domain.AlumniQueryUsecase
	AvatarUC  domain.AvatarUsecase
	ExportUC  domain.ExportUsecase
	HealthUC  usecase.HealthUsecase
	Auth      middleware.AuthConfig
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	origins := append([]string{deps.Config.FrontendURL}, deps.Config.AllowedOrigins...)

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(origins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	v1.GET("/health", healthHandler(deps.HealthUC))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Auth, deps.AccountUC))
	{
		NewAccountHandler(protected, deps.AccountUC, deps.CommandUC, deps.QueryUC, deps.AvatarUC, uploadLimiter)
		NewAlumniHandler(protected, deps.QueryUC)
		NewAdminHandler(protected, deps.ExportUC)
	}

	return r
}

// healthHandler godoc
// @Summary Health check
// @Description Reports database, cache and storage reachability
// @Tags System
// @Produce json
// @Success 200 {object} usecase.HealthReport
// @Failure 503 {object} usecase.HealthReport
// @Router /health [get]
func healthHandler(healthUC usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := healthUC.Check(c.Request.Context())
		if !report.Healthy() {
			response.Success(c, http.StatusServiceUnavailable, "System degraded", report)
			return
		}
		response.Success(c, http.StatusOK, "System operational", report)
	}
}
