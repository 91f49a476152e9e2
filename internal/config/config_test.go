package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"PORT", "GEMINI_API_KEY", "CHAT_MODEL", "CHAT_MEMORY_SIZE", "AI_RUN_TIMEOUT_SECONDS"} {
		t.Setenv(name, "")
	}

	cfg := Load()

	if cfg.Port != "8000" {
		t.Fatalf("cfg.Port = %q, want 8000", cfg.Port)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("cfg.Model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.MemorySize != DefaultMemorySize {
		t.Fatalf("cfg.MemorySize = %d, want %d", cfg.MemorySize, DefaultMemorySize)
	}
	if cfg.RunTimeout != 90*time.Second {
		t.Fatalf("cfg.RunTimeout = %v, want 90s", cfg.RunTimeout)
	}
	if cfg.HasAPIKey() {
		t.Fatalf("cfg.HasAPIKey() = true, want false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("CHAT_MEMORY_SIZE", "12")
	t.Setenv("AI_RUN_TIMEOUT_SECONDS", "5")

	cfg := Load()

	if cfg.Port != "9001" {
		t.Fatalf("cfg.Port = %q, want 9001", cfg.Port)
	}
	if !cfg.HasAPIKey() {
		t.Fatalf("cfg.HasAPIKey() = false, want true")
	}
	if cfg.MemorySize != 12 {
		t.Fatalf("cfg.MemorySize = %d, want 12", cfg.MemorySize)
	}
	if cfg.RunTimeout != 5*time.Second {
		t.Fatalf("cfg.RunTimeout = %v, want 5s", cfg.RunTimeout)
	}
}

func TestLoadClampsMemorySize(t *testing.T) {
	t.Setenv("CHAT_MEMORY_SIZE", "-3")

	cfg := Load()
	if cfg.MemorySize != DefaultMemorySize {
		t.Fatalf("cfg.MemorySize = %d, want %d", cfg.MemorySize, DefaultMemorySize)
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("CHAT_MEMORY_SIZE", "plenty")

	cfg := Load()
	if cfg.MemorySize != DefaultMemorySize {
		t.Fatalf("cfg.MemorySize = %d, want %d", cfg.MemorySize, DefaultMemorySize)
	}
}
