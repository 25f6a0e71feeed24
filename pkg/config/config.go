package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment         string
	DataDir             string
	StorageKey          string
	NotificationTTLDays int
	PasswordMinLength   int
	RetentionCron       string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		DataDir:             getEnv("DATA_DIR", "./data"),
		StorageKey:          getEnv("STORAGE_KEY", "sue_ah_hahn_db_v2"),
		NotificationTTLDays: getEnvAsInt("NOTIFICATION_TTL_DAYS", 5),
		PasswordMinLength:   getEnvAsInt("PASSWORD_MIN_LENGTH", 4),
		RetentionCron:       getEnv("RETENTION_CRON", "@daily"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
