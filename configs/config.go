package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBSource      string
	Port          string
	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional; env vars win either way
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using environment only")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "plush_palate.db"),
		Port:          getEnv("PORT", "8000"),
		SessionTTL:    time.Duration(24) * time.Hour,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
