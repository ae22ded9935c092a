package v1

import (
	"net/http"
	"time"

	"go-career-backend/config"
	"go-career-backend/internal/delivery/http/middleware"
	"go-career-backend/internal/delivery/http/response"
	"go-career-backend/internal/domain"
	"go-career-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC        domain.JobUsecase
	RoadmapUC    domain.RoadmapUsecase
	UserUC       domain.UserUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must be first.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Reads are public, like the original app. Writes require a Clerk
	// session and get a tighter rate limit.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider))
	protected.Use(middleware.RateLimitMiddleware(middleware.WriteRateLimitConfig()))
	{
		NewJobHandler(v1, protected, deps.JobUC)
		NewRoadmapHandler(v1, protected, deps.RoadmapUC)
	}
	NewUserHandler(v1, deps.UserUC)

	return r
}
