package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Redis configuration (rate limiting only; stores are in-memory)
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// PubNub configuration (optional realtime event broadcast)
	PubNubPublishKey   string
	PubNubSubscribeKey string
	PubNubSecretKey    string

	// Notifications
	EmailFrom     string
	EmailFromName string
	NotifyBuffer  int

	// Rate limiting
	EnableRateLimit    bool
	RateLimitPerMinute int

	// Monitoring
	EnableMetrics bool
	MetricsPort   string
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// PubNub
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),
		PubNubSecretKey:    getEnv("PUBNUB_SECRET_KEY", ""),

		// Notifications
		EmailFrom:     getEnv("EMAIL_FROM", "noreply@macsplatform.com"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "MACS Platform"),
		NotifyBuffer:  getEnvAsInt("NOTIFY_BUFFER", 64),

		// Rate limiting
		EnableRateLimit:    getEnvAsBool("ENABLE_RATE_LIMIT", true),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
