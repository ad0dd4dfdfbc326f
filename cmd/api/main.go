package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Swagger definitions
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Backend for a job board: vacancies, applications, profiles and editorial content.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// Custom binding validators (valid_name, valid_phone)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	userRepo := postgres.NewUserRepository(dbPool)
	jobSeekerRepo := postgres.NewJobSeekerProfileRepository(dbPool)
	employerRepo := postgres.NewEmployerProfileRepository(dbPool)
	catalogRepo := postgres.NewCatalogRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	contentRepo := postgres.NewContentRepository(dbPool)

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact notifications disabled")
	}

	fileStore, err := storage.NewFileStore(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to configure file storage", "error", err)
		os.Exit(1)
	}
	if !fileStore.IsConfigured() {
		logger.Log.Warn("File storage not configured - uploads disabled")
	}

	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, cfg.TokenTTLHours)
	profileUC := usecase.NewProfileUsecase(userRepo, jobSeekerRepo, employerRepo, vacancyRepo, applicationRepo)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, catalogRepo, employerRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, vacancyRepo, jobSeekerRepo, employerRepo)
	contentUC := usecase.NewContentUsecase(contentRepo)
	searchUC := usecase.NewSearchUsecase(vacancyRepo, contentRepo, catalogRepo)
	contactUC := usecase.NewContactUsecase(contentRepo, emailService)
	adminUC := usecase.NewAdminUsecase(contentRepo, applicationRepo, employerRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		CatalogUC:     catalogUC,
		VacancyUC:     vacancyUC,
		ApplicationUC: applicationUC,
		ContentUC:     contentUC,
		SearchUC:      searchUC,
		ContactUC:     contactUC,
		AdminUC:       adminUC,
		FileStore:     fileStore,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
