// Package config loads runtime configuration for the pdfjson binaries
// from environment variables, with a .env file as an optional source.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MaxUploadMB    int
	AllowedOrigins []string
	OCREnabled     bool
	OCRLanguage    string
	MaxConns       int
}

// Load reads the environment (and a .env file when present) and returns
// the effective configuration. Every key has a working default, so Load
// never fails.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		MaxUploadMB:    getEnvInt("MAX_UPLOAD_MB", 10),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		OCREnabled:     getEnvBool("OCR_ENABLED", false),
		OCRLanguage:    getEnv("OCR_LANGUAGE", "eng"),
		MaxConns:       getEnvInt("MAX_CONNS", 64),
	}
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("WARN: %s=%q not a bool, using default %t", key, v, def)
		return def
	}
	return b
}

// splitList parses a comma-separated value into trimmed entries.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
