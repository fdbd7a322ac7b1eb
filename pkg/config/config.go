package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	Environment       string
	APIBaseURL        string
	PublicBaseURL     string
	RedisAddr         string
	RedisPassword     string
	SessionTTLHours   int64
	FlouciAppToken    string
	FlouciAppSecret   string
	FlouciEnvironment string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		APIBaseURL:        getEnv("API_URL", "http://localhost:5000/api"),
		PublicBaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		SessionTTLHours:   getEnvAsInt64("SESSION_TTL_HOURS", 24),
		FlouciAppToken:    getEnv("FLOUCI_APP_TOKEN", ""),
		FlouciAppSecret:   getEnv("FLOUCI_APP_SECRET", ""),
		FlouciEnvironment: getEnv("FLOUCI_ENVIRONMENT", "sandbox"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
