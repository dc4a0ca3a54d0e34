package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	FeedURL string
	FeedKey string
	FeedRPS int

	BookingURL string

	TelegramToken  string
	TelegramChatID int64
	AgencyWhatsApp string // digits only, for the wa.me deep link

	RedisAddr string
	RedisDB   int
	RedisPass string

	RefreshInterval time.Duration
	NoticeTTL       time.Duration
	SnapshotTTL     time.Duration
}

func Load() Config {
	// local development convenience; absent .env is fine
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		FeedURL:         env("FEED_URL", "https://functions.poehali.dev/tours-scraper"),
		FeedKey:         env("FEED_API_KEY", ""),
		FeedRPS:         atoi("FEED_RPS", 5),
		BookingURL:      env("BOOKING_URL", "https://functions.poehali.dev/book-tour"),
		TelegramToken:   env("TELEGRAM_TOKEN", ""),
		AgencyWhatsApp:  env("AGENCY_WHATSAPP", "74951234567"),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RefreshInterval: time.Duration(atoi("REFRESH_INTERVAL_SECONDS", 900)) * time.Second,
		NoticeTTL:       time.Duration(atoi("NOTICE_TTL_SECONDS", 10)) * time.Second,
		SnapshotTTL:     time.Duration(atoi("SNAPSHOT_TTL_SECONDS", 86400)) * time.Second,
	}
	c.RedisDB = atoi("REDIS_DB", 0)
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.TelegramChatID = n
		}
	}
	if c.TelegramToken == "" {
		log.Warn().Msg("TELEGRAM_TOKEN is empty, channel notifications disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
