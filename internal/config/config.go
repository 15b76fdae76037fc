package config

import (
	"fmt"
	"strings"

	"github.com/thabani29/electronic/pkg/config"
	"github.com/thabani29/electronic/pkg/database"
)

// Server holds configuration for the store backend.
type Server struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"electronic-store"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort int `env:"HTTP_PORT" envDefault:"5000"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"electronic_store"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:5000"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadServer reads the backend configuration from the environment.
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Server) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

// Postgres maps the server settings onto a pool configuration.
func (c *Server) Postgres() database.PostgresConfig {
	pg := database.DefaultPostgresConfig()
	pg.Host = c.DBHost
	pg.Port = c.DBPort
	pg.User = c.DBUser
	pg.Password = c.DBPassword
	pg.DBName = c.DBName
	pg.SSLMode = c.DBSSLMode
	return pg
}

// Addr returns the listen address for the HTTP server.
func (c *Server) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// Storefront holds configuration for the cart CLI.
type Storefront struct {
	APIBaseURL string `env:"STORE_API_URL" envDefault:"http://localhost:5000"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`

	// CartPath is where the file-backed cart lives. When RedisAddr is
	// set the cart is kept in redis instead.
	CartPath  string `env:"CART_STORE_PATH" envDefault:""`
	RedisAddr string `env:"CART_REDIS_ADDR" envDefault:""`
}

// LoadStorefront reads the CLI configuration from the environment.
func LoadStorefront() (*Storefront, error) {
	cfg := &Storefront{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}
