package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                    string
	DatabaseDSN               string
	RedisAddr                 string
	RedisChannel              string
	CacheKeyPrefix            string
	RateLimit                 int
	ClaimSweepIntervalSeconds int
	ShutdownTimeoutSeconds    int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                    fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:               getEnv("DATABASE_DSN", "taskforperks.db"),
		RedisAddr:                 fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisChannel:              getEnv("REDIS_TASK_CHANNEL", "task_changes"),
		CacheKeyPrefix:            getEnv("CACHE_KEY_PREFIX", "task_detail:"),
		RateLimit:                 getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ClaimSweepIntervalSeconds: getEnvAsInt("CLAIM_SWEEP_INTERVAL_SECONDS", 60),
		ShutdownTimeoutSeconds:    getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RedisChannel == "" {
		log.Fatal("REDIS_TASK_CHANNEL must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ClaimSweepIntervalSeconds <= 0 {
		log.Fatal("CLAIM_SWEEP_INTERVAL_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
