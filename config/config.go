package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port    string
	LogMode string

	ServiceName    string
	ServiceVersion string

	DBDriver   string // postgres, mysql or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string // sqlite file path

	DefaultCoursePrice float64
	Currency           string

	PendingOrderTTL    time.Duration
	OrderSweepSchedule string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		LogMode: getEnv("LOG_MODE", "development"),

		ServiceName:    getEnv("SERVICE_NAME", "CDAX Course & Payment Service"),
		ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "cdax"),
		DBPath:     getEnv("DB_PATH", "cdax.db"),

		DefaultCoursePrice: getEnvFloat("DEFAULT_COURSE_PRICE", 399.0),
		Currency:           getEnv("CURRENCY", "INR"),

		PendingOrderTTL:    time.Duration(getEnvInt("PENDING_ORDER_TTL_MINUTES", 30)) * time.Minute,
		OrderSweepSchedule: getEnv("ORDER_SWEEP_SCHEDULE", "@every 5m"),
	}

	if cfg.DBDriver != "sqlite" && cfg.DBPassword == "" {
		log.Println("Warning: DB_PASSWORD is empty. Update it in your environment.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
