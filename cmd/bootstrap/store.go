package bootstrap

import (
	"context"
	"log/slog"

	"entry-registry/internal/infra/memstore"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore creates the single registry store; it lives as long as the fx app.
func NewStore(lc fx.Lifecycle, logger *slog.Logger) *memstore.Store {
	store := memstore.NewStore(logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Registry discarded", "entries", store.Count())
			return nil
		},
	})

	return store
}
