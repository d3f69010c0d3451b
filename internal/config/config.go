package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Security SecurityConfig
	Alerting AlertingConfig
	Profile  ProfileConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig holds transport-guard and at-rest encryption settings.
// APIKey is optional; when empty the API-key middleware is disabled.
// FernetKey is a base64 fernet key used to encrypt the alert recipient
// phone number at rest; when empty the phone is stored in plain text.
type SecurityConfig struct {
	APIKey    string
	FernetKey string
}

// AlertingConfig holds the scheduled refresh/alert sweep settings.
type AlertingConfig struct {
	Schedule string // cron spec for the periodic dashboard refresh
}

// ProfileConfig holds fallback financial scalars used when no user profile
// row exists yet.
type ProfileConfig struct {
	MonthlyIncome float64
	Savings       float64
	MonthlyBudget float64
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/finance_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Security: SecurityConfig{
			APIKey:    getEnv("API_KEY", ""),
			FernetKey: getEnv("FERNET_KEY", ""),
		},
		Alerting: AlertingConfig{
			Schedule: getEnv("ALERT_SCHEDULE", "@hourly"),
		},
		Profile: ProfileConfig{
			MonthlyIncome: getEnvFloat("DEFAULT_MONTHLY_INCOME", 50000),
			Savings:       getEnvFloat("DEFAULT_SAVINGS", 60000),
			MonthlyBudget: getEnvFloat("DEFAULT_MONTHLY_BUDGET", 20000),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a numeric environment variable or returns a default value.
// Unparseable values fall back to the default rather than failing startup.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
