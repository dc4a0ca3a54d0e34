package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"sletayka/internal/adapters/booking"
	"sletayka/internal/adapters/feed"
	server "sletayka/internal/adapters/http_server"
	"sletayka/internal/adapters/observability"
	redisad "sletayka/internal/adapters/redis"
	"sletayka/internal/adapters/telegram"
	"sletayka/internal/app"
	"sletayka/internal/domain"
	"sletayka/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	feedClient := feed.New(cfg.FeedURL, cfg.FeedKey, cfg.FeedRPS)

	var notifier domain.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := telegram.New(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("telegram init failed")
		}
		notifier = tg
	}

	catalog := app.NewCatalogService(feedClient, cache, notifier, cfg.SnapshotTTL, cfg.NoticeTTL)
	catalog.Seed(ctx)

	bookingClient := booking.New(cfg.BookingURL)
	bookings := app.NewBookingService(bookingClient, notifier, catalog, cfg.AgencyWhatsApp)

	// periodic refresh; ticker stops when ctx is cancelled
	go catalog.Run(ctx, cfg.RefreshInterval)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: catalog, Booking: bookings, Feed: feedClient})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("api stopped")
}
