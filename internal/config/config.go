package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds server configuration, read from the environment with
// development defaults.
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	Port          string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	ResultsTTL    time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "formilon"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password123"),
		ResultsTTL:    getEnvDuration("RESULTS_CACHE_TTL_SECONDS", 10*time.Minute),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}
