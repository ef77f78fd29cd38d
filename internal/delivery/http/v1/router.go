package v1

import (
	"net/http"
	"time"

	"go-talent-intake/config"
	"go-talent-intake/internal/delivery/http/middleware"
	"go-talent-intake/internal/domain"
	"go-talent-intake/internal/usecase"
	"go-talent-intake/pkg/audit"
	"go-talent-intake/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	RegistrationUC domain.RegistrationUsecase
	CandidateUC    domain.CandidateUsecase
	HealthUC       usecase.HealthUsecase
	JobCatalog     domain.JobCatalog
	Sessions       *auth.Manager
	RateLimiter    *middleware.RateLimiter
	Audit          *audit.Logger
	Config         *config.Config
	// MetricsHandler serves /metrics; defaults to the global Prometheus registry.
	MetricsHandler http.Handler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // before anything that can reject
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.ErrorHandler())

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	var registerLimit []gin.HandlerFunc
	if deps.RateLimiter != nil {
		registerLimit = append(registerLimit, deps.RateLimiter.Middleware(middleware.RegistrationRateLimitConfig(
			deps.Config.RateLimitRegisterThreshold,
			time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		)))
	}
	NewRegistrationHandler(v1, deps.RegistrationUC, deps.JobCatalog, registerLimit...)

	// Dashboard routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Sessions, deps.Audit))
	admin.Use(middleware.DashboardRoleMiddleware(deps.Audit))
	admin.Use(middleware.CSRFMiddleware(deps.Config.IsProduction(), deps.Audit))
	{
		NewCandidateHandler(admin, deps.CandidateUC)
	}

	return r
}
