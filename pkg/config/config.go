package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	StorageBucket   string

	// Google Play Developer API
	PlayPackageName        string
	PlayServiceAccountJSON string

	SyncIntervalSeconds      int64
	LinkAuditIntervalSeconds int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		PlayPackageName:        getEnv("GOOGLE_PLAY_PACKAGE_NAME", "com.assetdoor.app"),
		PlayServiceAccountJSON: getEnv("GOOGLE_PLAY_SERVICE_ACCOUNT_JSON", ""),

		SyncIntervalSeconds:      getEnvAsInt64("IAP_SYNC_INTERVAL_SECONDS", 60),
		LinkAuditIntervalSeconds: getEnvAsInt64("LINK_AUDIT_INTERVAL_SECONDS", 3600),
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
