package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SessionSecret string
	AdminUserID   uint
	Port          string
}

// DefaultAdminUserID is the identity allowed to create, edit, and delete
// posts. There is no role table; the first registered account is the
// administrator unless ADMIN_USER_ID overrides it.
const DefaultAdminUserID = 1

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "blog"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminUserID:   getEnvUint("ADMIN_USER_ID", DefaultAdminUserID),
		Port:          getEnv("PORT", "8080"),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint) uint {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return defaultVal
	}
	return uint(parsed)
}
