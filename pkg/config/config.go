package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the partner search API.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (database password, JWT signing key) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"8001"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Auth configuration
	Auth AuthConfig `yaml:"auth"`

	// Database configuration (PostgreSQL, credential store)
	Database DatabaseConfig `yaml:"database"`

	// Redis configuration (company lookup cache)
	Redis RedisConfig `yaml:"redis"`

	// CORSOriginsStr is a comma-separated list of allowed cross-origin hosts.
	// "*" allows any origin.
	CORSOriginsStr string `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"*"`

	// CORSOrigins is the parsed list from CORSOriginsStr (not from config file).
	CORSOrigins []string `yaml:"-"`

	// MigrationsPath is the directory containing SQL migrations.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies access tokens. Server refuses to start without it.
	JWTSecret string `yaml:"-" env:"JWT_SECRET_KEY"` // Secret - not in YAML

	// TokenTTLMinutes is the access token validity window.
	TokenTTLMinutes int `yaml:"token_ttl_minutes" env:"TOKEN_TTL_MINUTES" env-default:"480"`

	// Issuer is the iss claim stamped on issued tokens.
	Issuer string `yaml:"issuer" env:"TOKEN_ISSUER" env-default:"partner-search-api"`

	// Admin seed account, provisioned at startup when AdminPassword is set.
	AdminUsername string `yaml:"admin_username" env:"ADMIN_USERNAME" env-default:"admin"`
	AdminEmail    string `yaml:"admin_email" env:"ADMIN_EMAIL" env-default:"admin@dnb.com"`
	AdminFullName string `yaml:"admin_full_name" env:"ADMIN_FULL_NAME" env-default:"Admin User"`
	AdminPassword string `yaml:"-" env:"ADMIN_PASSWORD"` // Secret - not in YAML
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"partnersearch"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"partner_search"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
}

// RedisConfig holds Redis connection configuration for the company cache.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Load reads configuration from config.yaml with environment variable overrides.
// When config.yaml does not exist, configuration comes from the environment alone.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	cfg.CORSOrigins = splitOrigins(cfg.CORSOriginsStr)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks configuration invariants once at startup. There is no
// runtime reload, so a bad value here must stop the process.
func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET_KEY must be set")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token_ttl_minutes must be positive, got %d", c.Auth.TokenTTLMinutes)
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Addr returns the host:port address of the Redis server.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func splitOrigins(value string) []string {
	var origins []string
	for _, o := range strings.Split(value, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
