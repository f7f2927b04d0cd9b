package core

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// ParseLogLevel maps a config string to a LogLevel; unknown or empty input
// means silent.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	case "info":
		return LogLevelInfo
	default:
		return LogLevelSilent
	}
}

func gormLogLevel(level LogLevel) logger.LogLevel {
	switch level {
	case LogLevelError:
		return logger.Error
	case LogLevelWarn:
		return logger.Warn
	case LogLevelInfo:
		return logger.Info
	default:
		return logger.Silent
	}
}

// Open connects to the backing store. driver selects the dialect ("postgres"
// by default, "mysql" supported); the pool is sized for maxConnections with a
// 5 minute connection lifetime.
func Open(driver, dsn string, maxConnections int, level LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(level)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxConnections)
	sqlDB.SetMaxIdleConns(maxConnections)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
