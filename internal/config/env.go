package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// FromEnv loads an optional .env file, then builds the configuration from the
// BLUTTON_* variables. BLUTTON_BALANCE_FILE points at a YAML file that is read
// first; the remaining variables override it.
func FromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using process environment")
	}

	cfg := DefaultConfig()
	if path := getEnv("BLUTTON_BALANCE_FILE", ""); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if val := getEnvInt("BLUTTON_WINDOW_WIDTH"); val > 0 {
		cfg.Window.Width = int32(val)
	}
	if val := getEnvInt("BLUTTON_WINDOW_HEIGHT"); val > 0 {
		cfg.Window.Height = int32(val)
	}
	if val := getEnvInt("BLUTTON_TARGET_FPS"); val > 0 {
		cfg.Window.TargetFPS = int32(val)
	}
	if level := getEnv("BLUTTON_LOG_LEVEL", ""); level != "" {
		cfg.Logging.Level = level
	}
	if v := getEnv("BLUTTON_LOG_JSON", ""); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.JSONFormat = on
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
