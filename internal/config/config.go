package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPass            string
	DBName            string
	ServerPort        string
	RedisURL          string
	Env               string
	RedisTTL          time.Duration
	DefaultBoardTitle string
	BroadcastDeletes  bool
	MaxMessageSize    int64
}

func LoadConfig() Config {
	ttlStr := getEnv("REDIS_TTL", "5m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
	}

	maxMessageSize := getEnvAsInt64("WS_MAX_MESSAGE_SIZE", 2*1024*1024) // 2MB default, canvas snapshots are large

	return Config{
		DBHost:            getEnv("DB_HOST", "postgres"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPass:            getEnv("DB_PASSWORD", "password"),
		DBName:            getEnv("DB_NAME", "db_whiteboard"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		RedisURL:          getEnv("REDIS_URL", "redis:6379"),
		Env:               getEnv("ENV", "dev"),
		RedisTTL:          ttl,
		DefaultBoardTitle: getEnv("DEFAULT_BOARD_TITLE", "default"),
		BroadcastDeletes:  getEnvAsBool("BROADCAST_DELETES", false),
		MaxMessageSize:    maxMessageSize,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}
