package config

import (
	"os"
	"time"
)

type Config struct {
	HTTPAddr       string
	BackendBaseURL string
	RedisAddr      string
	RedisPassword  string
	KafkaBroker    string
	JWTSecret      string
	ClientTimeout  time.Duration
	SweepInterval  time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":3000"),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "https://api.jaja.id"),
		RedisAddr:      getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		KafkaBroker:    getEnv("KAFKA_BROKER", "kafka:9092"),
		JWTSecret:      getEnv("JWT_SECRET", "rahasia"),
		ClientTimeout:  getDuration("CLIENT_TIMEOUT", 10*time.Second),
		SweepInterval:  getDuration("SWEEP_INTERVAL", 5*time.Minute),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getDuration(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return d
}
