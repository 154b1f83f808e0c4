// Package config loads the bot's configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds everything the process needs to start.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// DBPath is the SQLite database holding the daily ledger
	// snapshots.
	DBPath string

	// BotID is the bot's own user ID; only messages opening with a
	// mention of this ID are treated as commands.
	BotID string

	// ChatBaseURL is the chat platform's web API base URL for
	// outbound messages and reactions.
	ChatBaseURL string
}

// Load reads configuration from environment variables, applying
// defaults for anything unset. Invalid numbers fall back to their
// defaults rather than failing startup.
func Load() Config {
	return Config{
		Port:        getEnvInt("PORT", 8080),
		DBPath:      getEnv("DB_PATH", "./data/orders.db"),
		BotID:       getEnv("BOT_ID", "lunchbot"),
		ChatBaseURL: getEnv("CHAT_BASE_URL", "http://localhost:9090/api"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
