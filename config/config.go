package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is built once in main from the environment and passed into the
// components that need it. Nothing else reads ambient settings.
type Config struct {
	Port        string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DatabaseURL string // full DSN, overrides the DB_* pieces when set
	JWTSecret   string
	CORSOrigins []string
	GinMode     string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Load reads the process environment. JWT_SECRET has no usable default; the
// caller treats an empty value as fatal.
func Load() *Config {
	return &Config{
		Port:        envOrDefault("PORT", "8080"),
		DBUser:      envOrDefault("DB_USER", "root"),
		DBPass:      envOrDefault("DB_PASS", ""),
		DBHost:      envOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:      envOrDefault("DB_PORT", "3306"),
		DBName:      envOrDefault("DB_NAME", "shivashray"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins: parseOrigins(envOrDefault("CORS_ORIGINS", "*")),
		GinMode:     envOrDefault("GIN_MODE", "debug"),
	}
}

// DSN resolves the MySQL connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	)
}
