package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	HTTPAddr string
	BotToken string
	ChatID   string
	// DevMode exposes stack traces in internal-error responses.
	DevMode bool
}

// Load reads configuration once per process. A missing bot token or chat id
// is not fatal here; it surfaces per request as a configuration error so the
// health endpoint stays reachable.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("Relay: No .env file found, relying on system env vars")
	}
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		BotToken: getEnv("BOT_TOKEN", ""),
		ChatID:   getEnv("CHAT_ID", ""),
		DevMode:  getEnv("APP_ENV", "") == "development",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
