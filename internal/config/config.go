package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	HTTPAddr  string
	RedisAddr string
	RedisPass string

	// AMQP broadcast transport; empty disables the broadcast publisher.
	AMQPURL       string
	ShareExchange string

	JWTSecret string

	// DefaultShareMessage is attached to share requests submitted without a
	// custom message.
	DefaultShareMessage string

	// DedupeContacts removes duplicate contacts when assembling a share
	// request. Off by default: the dashboard has always delivered duplicates
	// as-is, so turning this on is an explicit operator choice.
	DedupeContacts bool
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:            getEnv("HTTP_ADDR", ":8010"),
		RedisAddr:           getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass:           getEnv("REDIS_PASS", ""),
		AMQPURL:             getEnv("AMQP_URL", ""),
		ShareExchange:       getEnv("SHARE_EXCHANGE", "premiumcars.shares"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		DefaultShareMessage: getEnv("SHARE_DEFAULT_MESSAGE", "New records shared with you via PremiumCarsEU"),
		DedupeContacts:      getEnvAsBool("SHARE_DEDUPE_CONTACTS", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
