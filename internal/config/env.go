package config

import (
	"ExpenseTracker/database"
	"os"
	"strconv"
	"time"
)

type Env struct {
	AppPort        string
	AppEnv         string
	Database       database.Config
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadEnv reads the process environment; .env has already been applied by main.
func LoadEnv() Env {
	return Env{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),
		Database: database.Config{
			Driver: getEnv("DB_DRIVER", database.DriverSQLite),
			Path:   getEnv("DB_PATH", "./expenseTracker.db"),
			URL:    os.Getenv("DATABASE_URL"),
		},
		JWTSecret:      os.Getenv("JWT_ACCESS_TOKEN_SECRET"),
		JWTTTL:         getDuration("JWT_TTL", time.Hour),
		BcryptCost:     getInt("BCRYPT_COST", 10),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
