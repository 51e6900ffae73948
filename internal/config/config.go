package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Configはアプリ全体の設定
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`           // 店頭サーバーポート
	CollectorPort string `env:"COLLECTOR_PORT" envDefault:"5000"` // collectorポート
	CollectorURL  string `env:"COLLECTOR_URL" envDefault:"http://localhost:5000"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"` // postgres / memory

	DatabaseURL      string `env:"DATABASE_URL"` // あれば最優先
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"foodcart"`
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	StaticDir string `env:"STATIC_DIR"` // css/images
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	GoEnv     string `env:"GO_ENV" envDefault:"dev"` // dev/prod
}

// .envを読む（無ければ何もしない）
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Loadは環境変数
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	//必須チェック
	if strings.TrimSpace(cfg.Port) == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if strings.TrimSpace(cfg.CollectorPort) == "" {
		return Config{}, fmt.Errorf("COLLECTOR_PORT is required")
	}
	if strings.TrimSpace(cfg.CollectorURL) == "" {
		return Config{}, fmt.Errorf("COLLECTOR_URL is required")
	}
	switch cfg.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be %q or %q", StorageDriverPostgres, StorageDriverMemory)
	}

	return cfg, nil
}

// ":8080" 形式
func Addr(port string) string {
	if port != "" && port[0] == ':' {
		return port
	}
	return ":" + port
}

func (c Config) IsDev() bool {
	return c.GoEnv == "dev"
}
