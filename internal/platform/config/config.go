package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Addr               string
	Environment        string
	StoreBackend       string
	DataDir            string
	DatabaseURL        string
	MigrationsDir      string
	PayslipDir         string
	DuplicatePolicy    string
	RunMigrations      bool
	RunSeed            bool
	MaxBodyBytes       int64
	CORSAllowedOrigins []string
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		StoreBackend:       getEnv("STORE_BACKEND", BackendFile),
		DataDir:            getEnv("DATA_DIR", "data"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		PayslipDir:         getEnv("PAYSLIP_DIR", "storage/payslips"),
		DuplicatePolicy:    getEnv("DUPLICATE_POLICY", "allow"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", true),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendFile, BackendPostgres:
	default:
		return fmt.Errorf("STORE_BACKEND must be one of memory, file, postgres")
	}
	if c.StoreBackend == BackendPostgres && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND is postgres")
	}
	if c.StoreBackend == BackendFile && strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("DATA_DIR is required when STORE_BACKEND is file")
	}
	if c.DuplicatePolicy != "allow" && c.DuplicatePolicy != "reject" {
		return fmt.Errorf("DUPLICATE_POLICY must be allow or reject")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	return nil
}
