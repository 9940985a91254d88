package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the full runtime configuration, loaded from environment
// variables with sensible local-dev defaults.
type Config struct {
	ListenAddr  string
	APIBaseURL  string
	LogLevel    string
	DevMode     bool
	HTTPTimeout time.Duration
	ViewsDir    string
	AssetsDir   string
}

func Load() Config {
	return Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://127.0.0.1:5000/api"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DevMode:     getBool("DEV_MODE", false),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 15*time.Second),
		ViewsDir:    getEnv("VIEWS_DIR", "views"),
		AssetsDir:   getEnv("ASSETS_DIR", "assets"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
