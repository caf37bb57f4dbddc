package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"todo-hub.com/todo-hub/internal/constants"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	ShutdownTimeoutSeconds int

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	MaxFileSizeMB        int
	SignedURLTTLSeconds  int
	TimeIncrementMinutes int

	LogLevel  string
	LogFormat string
	LogOutput string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "todos.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		StorageEndpoint:        getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey:       getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey:       getEnv("STORAGE_SECRET_KEY", ""),
		StorageBucket:          getEnv("STORAGE_BUCKET", constants.DefaultStorageBucket),
		StorageUseSSL:          getEnvAsBool("STORAGE_USE_SSL", true),
		MaxFileSizeMB:          getEnvAsInt("MAX_FILE_SIZE_MB", constants.DefaultMaxFileSizeMB),
		SignedURLTTLSeconds:    getEnvAsInt("SIGNED_URL_TTL_SECONDS", constants.DefaultSignedURLTTLSeconds),
		TimeIncrementMinutes:   getEnvAsInt("TIME_INCREMENT_MINUTES", constants.DefaultTimeIncrementMinutes),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "console"),
		LogOutput:              getEnv("LOG_OUTPUT", "stdout"),
	}

	validate(cfg)
	return cfg
}

// validate halts startup on a bad configuration. The storage secrets are
// required; there is no usable fallback for them.
func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.StorageEndpoint == "" {
		log.Fatal("STORAGE_ENDPOINT must not be empty (e.g. localhost:9000)")
	}
	if cfg.StorageAccessKey == "" {
		log.Fatal("STORAGE_ACCESS_KEY must not be empty")
	}
	if cfg.StorageSecretKey == "" {
		log.Fatal("STORAGE_SECRET_KEY must not be empty")
	}
	if cfg.StorageBucket == "" {
		log.Fatal("STORAGE_BUCKET must not be empty")
	}
	if cfg.MaxFileSizeMB <= 0 {
		log.Fatal("MAX_FILE_SIZE_MB must be greater than 0")
	}
	if cfg.SignedURLTTLSeconds <= 0 {
		log.Fatal("SIGNED_URL_TTL_SECONDS must be greater than 0")
	}
	if cfg.TimeIncrementMinutes <= 0 {
		log.Fatal("TIME_INCREMENT_MINUTES must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
