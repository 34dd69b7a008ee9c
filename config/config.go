package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	// Crypto payment rails
	USDT_TRC20_WALLET string
	USDT_ERC20_WALLET string

	PAYMENT_WINDOW time.Duration
	RATE_TTL       time.Duration
	RATE_API_URL   string

	TELEGRAM_BOT_TOKEN string
	TELEGRAM_CHAT_ID   string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	USDT_TRC20_WALLET = mustEnv("USDT_TRC20_WALLET")
	USDT_ERC20_WALLET = getEnv("USDT_ERC20_WALLET", "")

	PAYMENT_WINDOW = time.Duration(getEnvInt("PAYMENT_WINDOW_MINUTES", 30)) * time.Minute
	RATE_TTL = time.Duration(getEnvInt("RATE_TTL_MINUTES", 60)) * time.Minute
	RATE_API_URL = getEnv("RATE_API_URL", "https://api.binance.com/api/v3/ticker/price")

	// Notifications are optional; leave the token empty to disable them.
	TELEGRAM_BOT_TOKEN = getEnv("TELEGRAM_BOT_TOKEN", "")
	TELEGRAM_CHAT_ID = getEnv("TELEGRAM_CHAT_ID", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, value)
	}
	return n
}
