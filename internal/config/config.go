package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultModel      = "gemini/gemini-2.5-flash"
	DefaultMemorySize = 6
)

type Config struct {
	Port       string
	APIKey     string
	Model      string
	MemorySize int
	RunTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port:       getenv("PORT", "8000"),
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      getenv("CHAT_MODEL", DefaultModel),
		MemorySize: getenvInt("CHAT_MEMORY_SIZE", DefaultMemorySize),
		RunTimeout: time.Duration(getenvInt("AI_RUN_TIMEOUT_SECONDS", 90)) * time.Second,
	}

	if cfg.MemorySize < 1 {
		cfg.MemorySize = DefaultMemorySize
	}

	return cfg
}

func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

func getenv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func getenvInt(name string, fallback int) int {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
