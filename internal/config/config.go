// internal/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Redis    RedisConfig
	Google   GoogleConfig
	Seed     SeedConfig
	Env      string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	URL string
}

// GoogleConfig carries both the OAuth client used for dashboard logins and the
// spreadsheet credentials. Reads go through the API key; writes go through the
// service account blob.
type GoogleConfig struct {
	ClientID                  string
	ClientSecret              string
	RedirectURL               string
	SheetsAPIKey              string
	SpreadsheetID             string
	ServiceAccountCredentials string
}

// SeedConfig holds the JSON blobs the directory is bootstrapped from. The
// blobs are only read when the team_members table is empty.
type SeedConfig struct {
	TeamMembersData string
	ManagersData    string
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "contentops"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		Google: GoogleConfig{
			ClientID:                  getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret:              getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:               getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/callback"),
			SheetsAPIKey:              getEnv("GOOGLE_SHEETS_API_KEY", ""),
			SpreadsheetID:             getEnv("GOOGLE_SPREADSHEET_ID", ""),
			ServiceAccountCredentials: getEnv("GOOGLE_SERVICE_ACCOUNT_CREDENTIALS", ""),
		},
		Seed: SeedConfig{
			TeamMembersData: getEnv("TEAM_MEMBERS_DATA", ""),
			ManagersData:    getEnv("MANAGERS_DATA", ""),
		},
		Env: getEnv("ENVIRONMENT", "development"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
