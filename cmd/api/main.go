package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/country-gallery-api/docs"
	"github.com/kingrain94/country-gallery-api/internal/api"
	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/middleware"
	"github.com/kingrain94/country-gallery-api/internal/repository/composite"
	"github.com/kingrain94/country-gallery-api/internal/service"
	"github.com/kingrain94/country-gallery-api/internal/service/pubsub"
	"github.com/kingrain94/country-gallery-api/internal/service/queue"
	"github.com/kingrain94/country-gallery-api/internal/service/storage"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

// @title           Country Gallery API
// @version         1.0
// @description     Photo submissions grouped into per-country galleries.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV")).Named("api")
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	redisClient, err := config.DefaultRedisConfig().GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	blobStorage := storage.NewS3Storage(s3Client, s3Config, appLogger)
	if err := blobStorage.EnsureBucket(ctx); err != nil {
		appLogger.Fatal("Failed to prepare S3 bucket", err)
	}

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	validator := service.NewAccessCodeValidator(repo, appLogger)
	countryService := service.NewCountryService(repo, validator, authMiddleware)
	uploadService := service.NewUploadService(repo, blobStorage, sqsService, redisPubSub, validator, cfg.Upload, appLogger)
	galleryService := service.NewGalleryService(repo, blobStorage, appLogger)
	deletionService := service.NewDeletionService(repo, blobStorage, sqsService, redisPubSub, appLogger)

	server := api.NewServer(
		countryService,
		uploadService,
		galleryService,
		deletionService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg,
		appLogger,
		redisPubSub,
	)
	server.StartWebSocketHub()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.SetupOps(router)
	server.SetupRoutes(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()
	appLogger.Infof("Listening on :%d", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	server.StopWebSocketHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
