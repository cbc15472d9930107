package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration (GridFS media store)
	MongoDB MongoConfig `json:"mongodb"`

	// JWT Configuration
	JWT JWTConfig `json:"jwt"`

	// Relay Configuration (realtime message relay)
	Relay RelayConfig `json:"relay"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`

	// Per-statement timeout and bounded retry for transient failures
	QueryTimeout int `json:"query_timeout"`  // seconds
	MaxRetries   int `json:"max_retries"`    // attempts per statement
	RetryDelay   int `json:"retry_delay_ms"` // milliseconds between attempts
}

// MongoConfig contains MongoDB / GridFS configuration
type MongoConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// JWTConfig contains token signing configuration
type JWTConfig struct {
	Secret      string `json:"-"`
	ExpiryHours int    `json:"expiry_hours"`
}

// RelayConfig contains websocket relay configuration
type RelayConfig struct {
	SendBufferSize int `json:"send_buffer_size"` // per-client outbound channel
	ReadLimitBytes int `json:"read_limit_bytes"` // max inbound frame size
}

// Load builds a Config from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "instapost_user"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "instapost_db"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			QueryTimeout: getEnvIntOrDefault("DB_QUERY_TIMEOUT", 5),
			MaxRetries:   getEnvIntOrDefault("DB_MAX_RETRIES", 3),
			RetryDelay:   getEnvIntOrDefault("DB_RETRY_DELAY_MS", 200),
		},
		MongoDB: MongoConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Database: getEnvOrDefault("MONGO_DB", "instapost_media"),
			Username: getEnvOrDefault("MONGO_USER", ""),
			Password: getEnvOrDefault("MONGO_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:      getEnvOrDefault("JWT_SECRET", ""),
			ExpiryHours: getEnvIntOrDefault("JWT_EXPIRY_HOURS", 24),
		},
		Relay: RelayConfig{
			SendBufferSize: getEnvIntOrDefault("RELAY_SEND_BUFFER", 32),
			ReadLimitBytes: getEnvIntOrDefault("RELAY_READ_LIMIT", 1<<16),
		},
	}
}

// DSN builds the MySQL connection string from the database section.
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// MongoURI builds the MongoDB connection string.
func (cfg *Config) MongoURI() string {
	if cfg.MongoDB.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s",
			cfg.MongoDB.Username, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
