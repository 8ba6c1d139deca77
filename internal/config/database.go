package config

import (
	"fmt"

	"biztime-backend/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the connection pool shared by every repository.
func InitDB(cfg Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.DBDebug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), GormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	logger.L().Info("database connected", "max_open_conns", cfg.MaxOpenConns)
	return db, nil
}

// GormConfig is shared by the postgres connection and the sqlite test store.
// TranslateError turns driver constraint errors into gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func GormConfig(level gormlogger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	}
}
