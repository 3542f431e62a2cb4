package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr        string
	RedisAddr       string
	KafkaBrokers    []string
	ServiceName     string
	NotifierGroup   string
	NotifierWorkers int
}

// Load reads configuration from the environment. Redis and Kafka are
// opt-in: leaving REDIS_ADDR or KAFKA_BROKERS empty runs the API purely
// against the in-memory stores.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		KafkaBrokers:    splitCSV(getenv("KAFKA_BROKERS", "")),
		ServiceName:     getenv("SERVICE_NAME", "grubdash-api"),
		NotifierGroup:   getenv("NOTIFIER_GROUP", "grubdash-notifier"),
		NotifierWorkers: getint("NOTIFIER_WORKERS", 4),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	i, err := strconv.Atoi(os.Getenv(k))
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
