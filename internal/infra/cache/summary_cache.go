package cache

import (
	"context"
	"log/slog"
	"time"

	"entry-registry/internal/domain/summary"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// SummaryCache memoises resolved summaries by project name. Any registration can
// change a summary, so writers flush the whole cache.
type SummaryCache struct {
	cache  *gocache.Cache
	logger *slog.Logger
}

func NewSummaryCache(defaultExpiration, cleanupInterval time.Duration, logger *slog.Logger) *SummaryCache {
	if defaultExpiration <= 0 {
		defaultExpiration = DefaultExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &SummaryCache{
		cache:  gocache.New(defaultExpiration, cleanupInterval),
		logger: logger,
	}
}

func (c *SummaryCache) Get(_ context.Context, name string) (*summary.Summary, bool) {
	value, found := c.cache.Get(name)
	if !found {
		return nil, false
	}

	s, ok := value.(*summary.Summary)
	if !ok {
		c.logger.Error("wrong type assertion when getting summary", "name", name)
		return nil, false
	}

	c.logger.Debug("summary cache hit", "name", name)
	return s, true
}

func (c *SummaryCache) Set(_ context.Context, s *summary.Summary) {
	c.cache.SetDefault(s.Name, s)
}

func (c *SummaryCache) Flush(_ context.Context) {
	c.cache.Flush()
}

func (c *SummaryCache) ItemCount() int {
	return c.cache.ItemCount()
}
