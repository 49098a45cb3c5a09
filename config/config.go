package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTKey = "defaultSecret"

// Config holds application configuration
type Config struct {
	Port        string
	CorsOrigins string

	DBDriver   string // postgres, mysql, sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBDSN      string // overrides the composed DSN when set

	JWTKey        string
	JWTExpiresIn  time.Duration
	SaltRound     int
	AuthRateLimit int // login/signup requests per IP per minute, 0 disables

	CertificateRequireCompletion bool
	QuizEnforceTimeLimit         bool
	SeedOnStart                  bool

	SendgridAPIKey        string
	EmailSender           string
	CertificateWebhookURL string
	ReconcileSchedule     string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		CorsOrigins: getEnv("CORS_ORIGINS", "*"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "coursetrack"),
		DBDSN:      getEnv("DB_DSN", ""),

		JWTKey:        getEnv("JWT_SECRET_KEY", defaultJWTKey),
		JWTExpiresIn:  getEnvDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		SaltRound:     getEnvInt("SALT_ROUND", 10),
		AuthRateLimit: getEnvInt("AUTH_RATE_LIMIT", 10),

		CertificateRequireCompletion: getEnvBool("CERTIFICATE_REQUIRE_COMPLETION", true),
		QuizEnforceTimeLimit:         getEnvBool("QUIZ_ENFORCE_TIME_LIMIT", true),
		SeedOnStart:                  getEnvBool("SEED_ON_START", true),

		SendgridAPIKey:        getEnv("SENDGRID_API_KEY", ""),
		EmailSender:           getEnv("EMAIL_SENDER", "noreply@coursetrack.local"),
		CertificateWebhookURL: getEnv("CERTIFICATE_WEBHOOK_URL", ""),
		ReconcileSchedule:     getEnv("RECONCILE_SCHEDULE", "0 3 * * *"),
	}

	// Validate critical configuration
	if cfg.JWTKey == defaultJWTKey {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if cfg.SendgridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Emails will only be logged.")
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

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
