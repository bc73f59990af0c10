package components

import (
	"entry-registry/internal/infra/cache"
	"entry-registry/internal/infra/memstore"
	"entry-registry/internal/usecase/commands"
	"entry-registry/internal/usecase/queries"

	"go.uber.org/fx"
)

// The store and the cache are singletons; each is exposed under both the
// write-side and read-side ports.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(s *memstore.Store) commands.EntryRepository { return s },
		func(s *memstore.Store) queries.EntryReadStore { return s },
		func(c *cache.SummaryCache) commands.SummaryInvalidator { return c },
		func(c *cache.SummaryCache) queries.SummaryCache { return c },
	),
)
