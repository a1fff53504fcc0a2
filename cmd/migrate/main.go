package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/db"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
	}
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV")).Named("migrate")
	defer appLogger.Sync()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	sqlDB, err := dbConnections.WriterSQL()
	if err != nil {
		appLogger.Fatal("Failed to open writer connection", err)
	}

	switch command {
	case "up":
		err = db.RunMigrations(sqlDB)
	case "down":
		err = db.MigrateDown(sqlDB)
	case "status":
		err = db.MigrationStatus(sqlDB)
	default:
		flag.Usage()
		err = errors.New("unknown command " + command)
	}
	if err != nil {
		appLogger.Fatal("Migration failed", err)
	}

	appLogger.Infof("Migration %q completed", command)
}
