package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultPassword  = "password123"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Interest accrual
	InterestRate                  decimal.Decimal
	InterestAccrueOnBalanceChange bool
	InterestSweepCron             string
	InterestSweepConcurrency      int

	// Password given to logins created on someone's behalf (customers, employees).
	DefaultUserPassword string

	// Receipt and profile picture storage
	GCSBucket          string
	GCSPrefix          string
	GCSCredentialsFile string
	MaxUploadBytes     int64

	RedisURL           string
	LoginRateLimit     string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "bank-backoffice-app")
	viper.SetDefault("INTEREST_RATE", "0.12")
	viper.SetDefault("INTEREST_ACCRUE_ON_BALANCE_CHANGE", true)
	viper.SetDefault("INTEREST_SWEEP_CRON", "0 2 1 1 *")
	viper.SetDefault("INTEREST_SWEEP_CONCURRENCY", 4)
	viper.SetDefault("DEFAULT_USER_PASSWORD", defaultPassword)
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("GCS_PREFIX", "receipts")
	viper.SetDefault("GCS_CREDENTIALS_FILE", "")
	viper.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	// Environment variables override the defaults above and anything loaded from .env.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "bank-backoffice-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	rate, err := decimal.NewFromString(viper.GetString("INTEREST_RATE"))
	if err != nil {
		return nil, fmt.Errorf("invalid INTEREST_RATE %q: %w", viper.GetString("INTEREST_RATE"), err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("INTEREST_RATE must not be negative, got %s", rate)
	}

	cfg.InterestSweepConcurrency = viper.GetInt("INTEREST_SWEEP_CONCURRENCY")
	if cfg.InterestSweepConcurrency < 1 {
		log.Printf("Warning: INTEREST_SWEEP_CONCURRENCY must be at least 1, got %d. Defaulting to 4.\n", cfg.InterestSweepConcurrency)
		cfg.InterestSweepConcurrency = 4
	}

	cfg.DefaultUserPassword = viper.GetString("DEFAULT_USER_PASSWORD")
	if cfg.DefaultUserPassword == defaultPassword {
		log.Println("Warning: DEFAULT_USER_PASSWORD not set. New customer and employee logins get a well-known password.")
	}

	cfg.GCSBucket = viper.GetString("GCS_BUCKET")
	if cfg.GCSBucket == "" {
		log.Println("Warning: GCS_BUCKET not set. Receipt and profile picture uploads will fail.")
	}

	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 5 << 20
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.InterestRate = rate
	cfg.InterestAccrueOnBalanceChange = viper.GetBool("INTEREST_ACCRUE_ON_BALANCE_CHANGE")
	cfg.InterestSweepCron = viper.GetString("INTEREST_SWEEP_CRON")
	cfg.GCSPrefix = strings.Trim(viper.GetString("GCS_PREFIX"), "/")
	cfg.GCSCredentialsFile = viper.GetString("GCS_CREDENTIALS_FILE")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
