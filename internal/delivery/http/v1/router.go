package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	CatalogUC     domain.CatalogUsecase
	VacancyUC     domain.VacancyUsecase
	ApplicationUC domain.ApplicationUsecase
	ContentUC     domain.ContentUsecase
	SearchUC      domain.SearchUsecase
	ContactUC     domain.ContactUsecase
	AdminUC       domain.AdminUsecase
	FileStore     *storage.FileStore
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// CORS must run before everything else
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))

	NewAuthHandler(v1, protected, loginLimiter, deps.AuthUC)
	NewProfileHandler(v1, protected, deps.ProfileUC, deps.FileStore)
	NewCatalogHandler(v1, protected, deps.CatalogUC)
	NewVacancyHandler(v1, protected, deps.VacancyUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewContentHandler(v1, protected, deps.ContentUC)
	NewSearchHandler(v1, deps.SearchUC)
	NewContactHandler(v1, deps.ContactUC)
	NewAdminHandler(protected, deps.AdminUC)

	return r
}
