package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	TokenModeDemo = "demo"
	TokenModeJWT  = "jwt"
)

// DefaultDemoPatientID is the profile served when the caller is anonymous
const DefaultDemoPatientID = "patient_123"

// Config holds the runtime settings of the API
type Config struct {
	ServerPort string
	GinMode    string

	LogLevel  string
	LogFormat string

	TokenMode          string
	JWTSecret          string
	JWTExpirationHours int64

	PasswordHashing string
	DemoPatientID   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "5000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
		TokenMode:          getEnv("TOKEN_MODE", TokenModeDemo),
		JWTSecret:          os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: getInt64("JWT_EXPIRATION_HOURS", 24),
		PasswordHashing:    getEnv("PASSWORD_HASHING", "plain"),
		DemoPatientID:      getEnv("DEMO_PATIENT_ID", DefaultDemoPatientID),
	}

	switch cfg.TokenMode {
	case TokenModeDemo:
	case TokenModeJWT:
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET_KEY not set but TOKEN_MODE is %q", TokenModeJWT)
		}
	default:
		return nil, fmt.Errorf("invalid TOKEN_MODE %q (use %q or %q)", cfg.TokenMode, TokenModeDemo, TokenModeJWT)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
