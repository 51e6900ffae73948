package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Postgres接続情報
type Options struct {
	DatabaseURL string

	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// 開発中はSQLを出す
	Debug bool
}

// Connect はDBに接続して *gorm.DB を返す。
func Connect(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if opts.Debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	// DATABASE_URL があれば最優先で使う
	if opts.DatabaseURL != "" {
		return gorm.Open(postgres.Open(opts.DatabaseURL), cfg)
	}

	return gorm.Open(postgres.Open(DSN(opts)), cfg)
}

// key=value形式のDSN
func DSN(opts Options) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.User, opts.Password, opts.Name, opts.SSLMode,
	)
}
