package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("BOT_ID", "")
	t.Setenv("CHAT_BASE_URL", "")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./data/orders.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.BotID != "lunchbot" {
		t.Errorf("BotID = %q", cfg.BotID)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("BOT_ID", "B042")
	t.Setenv("CHAT_BASE_URL", "https://chat.example.com/api")

	cfg := Load()
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.DBPath != "/tmp/x.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.BotID != "B042" {
		t.Errorf("BotID = %q", cfg.BotID)
	}
	if cfg.ChatBaseURL != "https://chat.example.com/api" {
		t.Errorf("ChatBaseURL = %q", cfg.ChatBaseURL)
	}
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if cfg := Load(); cfg.Port != 8080 {
		t.Errorf("Port = %d, want the 8080 fallback", cfg.Port)
	}
}
