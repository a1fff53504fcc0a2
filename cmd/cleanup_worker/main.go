package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/service/queue"
	"github.com/kingrain94/country-gallery-api/internal/service/storage"
	"github.com/kingrain94/country-gallery-api/internal/worker"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV")).Named("cleanup-worker")
	ctx := context.Background()

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	blobStorage := storage.NewS3Storage(s3Client, s3Config, appLogger)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	cleanupWorker := worker.NewCleanupWorker(
		sqsService,
		sqsService.CleanupQueueURL(),
		blobStorage,
		appLogger,
		1,
		10*time.Second,
	)

	cleanupWorker.Start()
	appLogger.Info("Cleanup worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down cleanup worker...")
	cleanupWorker.Stop()
	appLogger.Info("Cleanup worker stopped")
	appLogger.Sync()
}
