package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"sletayka/internal/adapters/feed"
	"sletayka/internal/adapters/observability"
	redisad "sletayka/internal/adapters/redis"
	"sletayka/internal/app"
	"sletayka/internal/domain"
	"sletayka/internal/shared"
)

// One-shot refresh: asks the upstream scraper to re-crawl, pulls the
// resulting tour list and stores the snapshot. Meant for cron.
func main() {
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("feed", cfg.FeedURL).
		Msg("refresher starting")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := feed.New(cfg.FeedURL, cfg.FeedKey, cfg.FeedRPS)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	if err := client.TriggerRefresh(ctx); err != nil {
		log.Warn().Err(err).Msg("upstream refresh trigger failed, fetching anyway")
	}

	catalog := app.NewCatalogService(client, cache, nil, cfg.SnapshotTTL, cfg.NoticeTTL)
	catalog.Seed(ctx)

	if err := catalog.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("refresh failed")
	}

	tours, updated := catalog.Tours(domain.DefaultFilter(), "")
	log.Info().
		Int("tours", len(tours)).
		Time("updated", updated).
		Msg("refresh completed")
}
