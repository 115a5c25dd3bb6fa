package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const pingTimeout = 5 * time.Second

// DB is the global database instance
var DB *gorm.DB

// gormWriter sends gorm's log lines to zap
type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debugf(format, args...)
}

func newGormLogger(cfg *Config, log *zap.SugaredLogger) logger.Interface {
	level := logger.Error
	if cfg.IsDev() {
		level = logger.Info
	}

	return logger.New(gormWriter{log: log.Named("gorm")}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// ConnectDatabase opens the MySQL record store and verifies it answers
func ConnectDatabase(cfg *Config, log *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsnConfig(cfg.Database).FormatDSN()), &gorm.Config{
		Logger:                 newGormLogger(cfg, log),
		SkipDefaultTransaction: true,
		// tracking rows keep offer ids that may not exist in loan_packages
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database at %s: %w", cfg.Database.Host, err)
	}

	DB = db

	log.Infow("✅ Database connected",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"db", cfg.Database.DBName,
		"max_open", cfg.Database.MaxOpenConns,
	)

	return db, nil
}

// dsnConfig builds the driver settings for utf8mb4 and local-time parsing
func dsnConfig(d DatabaseConfig) *mysqldriver.Config {
	dc := mysqldriver.NewConfig()
	dc.User = d.User
	dc.Passwd = d.Password
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(d.Host, d.Port)
	dc.DBName = d.DBName
	dc.ParseTime = true
	dc.Loc = time.Local
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc
}

// CloseDatabase releases the connection pool
func CloseDatabase() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the database within a short deadline
func HealthCheck() error {
	if DB == nil {
		return errors.New("database not initialized")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
