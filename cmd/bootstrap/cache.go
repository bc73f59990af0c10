package bootstrap

import (
	"context"
	"log/slog"

	"entry-registry/internal/infra/cache"
	"entry-registry/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSummaryCache,
	),
)

func NewSummaryCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *cache.SummaryCache {
	c := cache.NewSummaryCache(cfg.Cache.SummaryTTL, cfg.Cache.CleanupInterval, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			c.Flush(ctx)
			return nil
		},
	})

	return c
}
