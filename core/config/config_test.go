package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, expected longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Bot.Greeting != GreetingVideo {
		t.Fatalf("greeting = %q, expected video", cfg.Bot.Greeting)
	}
	if cfg.Storage.Backend != StorageMemory {
		t.Fatalf("backend = %q, expected memory", cfg.Storage.Backend)
	}
}

func TestNormalizeRunModeAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, expected longpoll", cfg.Telegram.RunMode)
	}
}

func TestNormalizeMissingToken(t *testing.T) {
	cfg := &Config{}
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("expected token error, got %v", err)
	}
}

func TestNormalizeWebhookRequiresURL(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook without url")
	}
}

func TestNormalizeInvalidGreeting(t *testing.T) {
	cfg := validConfig()
	cfg.Bot.Greeting = "hero"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown greeting mode")
	}
}

func TestNormalizeGreetingMenu(t *testing.T) {
	cfg := validConfig()
	cfg.Bot.Greeting = "Menu"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Bot.Greeting != GreetingMenu {
		t.Fatalf("greeting = %q, expected menu", cfg.Bot.Greeting)
	}
}

func TestNormalizeStorageBackends(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Backend = "redis"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for redis backend without addr")
	}
	cfg.Storage.Redis.Addr = "localhost:6379"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	cfg = validConfig()
	cfg.Storage.Backend = "postgres"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for postgres backend without connection settings")
	}

	cfg = validConfig()
	cfg.Storage.Backend = "cassandra"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
