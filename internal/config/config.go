// Package config loads default watermark settings from the environment,
// optionally seeded from a .env file. Command-line flags override these.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the default watermark options.
type Config struct {
	FontSize int
	Color    string
	Position string
	FontPath string
}

// Load reads defaults from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		FontSize: getEnvAsInt("PHOTOMARK_SIZE", 24),
		Color:    getEnv("PHOTOMARK_COLOR", "white"),
		Position: getEnv("PHOTOMARK_POSITION", "bottom-right"),
		FontPath: getEnv("PHOTOMARK_FONT", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
