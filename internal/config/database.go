package config

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	writerRole = "WRITER"
	readerRole = "READER"
)

// DatabaseConfig describes one postgres endpoint. The writer and the reader
// are configured separately through POSTGRES_WRITER_* and POSTGRES_READER_*;
// a reader left unconfigured falls back to the writer's settings.
type DatabaseConfig struct {
	Role     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

func loadDatabaseConfig(role string, fallback *DatabaseConfig) *DatabaseConfig {
	env := func(name, def string) string {
		if fallback != nil {
			def = fallbackValue(fallback, name, def)
		}
		return getEnvWithDefault("POSTGRES_"+role+"_"+name, def)
	}

	return &DatabaseConfig{
		Role:            strings.ToLower(role),
		Host:            env("HOST", "localhost"),
		Port:            env("PORT", "5432"),
		User:            env("USER", "postgres"),
		Password:        env("PASSWORD", ""),
		DBName:          env("DB_NAME", "country_gallery"),
		SSLMode:         env("SSL_MODE", "disable"),
		MaxOpenConns:    getEnvIntWithDefault("DB_MAX_OPEN_CONNS", 50),
		MaxIdleConns:    getEnvIntWithDefault("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: getEnvDurationWithDefault("DB_CONN_MAX_LIFETIME", time.Hour),
		LogLevel:        parseGormLogLevel(getEnvWithDefault("DB_LOG_LEVEL", "warn")),
	}
}

func fallbackValue(c *DatabaseConfig, name, def string) string {
	switch name {
	case "HOST":
		return c.Host
	case "PORT":
		return c.Port
	case "USER":
		return c.User
	case "PASSWORD":
		return c.Password
	case "DB_NAME":
		return c.DBName
	case "SSL_MODE":
		return c.SSLMode
	}
	return def
}

// parseGormLogLevel maps silent, error, warn and info to gorm levels.
func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Open connects with gorm and applies the pool limits.
func (c *DatabaseConfig) Open() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(c.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", c.Role, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB for %s database: %w", c.Role, err)
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)

	return db, nil
}

// DatabaseConnections holds the writer pool, used for every write and for
// reads inside transactions, and the reader pool used for plain reads.
type DatabaseConnections struct {
	Writer *gorm.DB
	Reader *gorm.DB
}

func NewDatabaseConnections() (*DatabaseConnections, error) {
	writerCfg := loadDatabaseConfig(writerRole, nil)
	readerCfg := loadDatabaseConfig(readerRole, writerCfg)

	writer, err := writerCfg.Open()
	if err != nil {
		return nil, err
	}

	reader, err := readerCfg.Open()
	if err != nil {
		closeGorm(writer)
		return nil, err
	}

	return &DatabaseConnections{
		Writer: writer,
		Reader: reader,
	}, nil
}

// WriterSQL exposes the writer pool for tools that need database/sql, such as migrations.
func (dc *DatabaseConnections) WriterSQL() (*sql.DB, error) {
	return dc.Writer.DB()
}

func (dc *DatabaseConnections) Close() error {
	var errs []error
	if err := closeGorm(dc.Writer); err != nil {
		errs = append(errs, fmt.Errorf("failed to close writer database connection: %w", err))
	}
	if err := closeGorm(dc.Reader); err != nil {
		errs = append(errs, fmt.Errorf("failed to close reader database connection: %w", err))
	}
	return errors.Join(errs...)
}

func closeGorm(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
