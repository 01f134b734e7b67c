package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings. It is built once in main and passed
// by reference into constructors; nothing reads the environment after Load.
type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	JWTAlgorithm        string
	AccessTokenExpiry   time.Duration
	RefreshTokenExpiry  time.Duration
	DiscordClientID     string
	DiscordClientSecret string
	DiscordRedirectURI  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 8 * time.Hour
	if exp := os.Getenv("ACCESS_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 30 * 24 * time.Hour
	if exp := os.Getenv("REFRESH_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", defaultDatabaseURL()),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAlgorithm:        getEnv("JWT_ALGORITHM", "HS512"),
		AccessTokenExpiry:   accessExpiry,
		RefreshTokenExpiry:  refreshExpiry,
		DiscordClientID:     getEnv("DISCORD_CLIENT_ID", ""),
		DiscordClientSecret: getEnv("DISCORD_CLIENT_SECRET", ""),
		DiscordRedirectURI:  getEnv("DISCORD_REDIRECT_URI", "http://localhost:8080/api/auth/discord/callback"),
	}
}

func defaultDatabaseURL() string {
	user := getEnv("POSTGRES_USER", "postgres")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := getEnv("POSTGRES_SERVER", "localhost")
	db := getEnv("POSTGRES_DB", "saypal")

	if password != "" {
		return fmt.Sprintf("postgres://%s:%s@%s/%s", user, password, host, db)
	}
	return fmt.Sprintf("postgres://%s@%s/%s", user, host, db)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
