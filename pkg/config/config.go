package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string

	CBRBaseURL      string
	CacheTTLSeconds int
	// LookbackDays - на сколько календарных дней назад расширяется окно
	// запроса курса, чтобы захватить предыдущий торговый день
	LookbackDays int

	Redis RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func Load() (*Config, error) {
	if err := godotenv.Load("config.env"); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	ttl, err := intEnv("CBR_CACHE_TTL", 600)
	if err != nil {
		return nil, err
	}

	lookbackDays, err := intEnv("COURSE_LOOKBACK_DAYS", 30)
	if err != nil {
		return nil, err
	}

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr:      stringEnv("SERVER_ADDR", ":8080"),
		CBRBaseURL:      stringEnv("CBR_BASE_URL", "https://www.cbr.ru"),
		CacheTTLSeconds: ttl,
		LookbackDays:    lookbackDays,
		Redis: RedisConfig{
			Addr:     stringEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
	}, nil
}

func stringEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return parsed, nil
}
