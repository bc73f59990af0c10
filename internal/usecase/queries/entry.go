package queries

import (
	"context"
	"log/slog"

	"entry-registry/internal/domain/entry"
	"entry-registry/internal/domain/summary"
	"entry-registry/internal/infra"
	"entry-registry/internal/pkg/errs"
	"entry-registry/internal/pkg/ptr"

	"github.com/jinzhu/copier"
)

//go:generate mockgen -source=entry.go -destination=../../../tests/mock/queries/entry.go -package=queriesmock

type EntryReadStore interface {
	FindByName(ctx context.Context, name string) (*entry.Entry, error)
	FindAll(ctx context.Context) ([]*entry.Entry, error)
	Read(ctx context.Context, fn func(ctx context.Context, r summary.EntryReader) error) error
}

type SummaryCache interface {
	Get(ctx context.Context, name string) (*summary.Summary, bool)
	Set(ctx context.Context, s *summary.Summary)
}

type EntryQueries interface {
	Lookup(ctx context.Context, name string) (*EntryView, error)
	List(ctx context.Context) ([]*EntryView, error)
	Summarize(ctx context.Context, name string) (*SummaryView, error)
}

type entryQueriesImpl struct {
	store    EntryReadStore
	resolver *summary.Resolver
	cache    SummaryCache
	logger   *slog.Logger
}

func NewEntryQueries(store EntryReadStore, resolver *summary.Resolver, cache SummaryCache, logger *slog.Logger) EntryQueries {
	return &entryQueriesImpl{
		store:    store,
		resolver: resolver,
		cache:    cache,
		logger:   logger,
	}
}

func (q *entryQueriesImpl) Lookup(ctx context.Context, name string) (*EntryView, error) {
	e, err := q.store.FindByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrEntryNotFound, "name %s", name)
		}
		return nil, errs.Mark(err, ErrEntryQueryFailed)
	}
	return toEntryView(e), nil
}

func (q *entryQueriesImpl) List(ctx context.Context) ([]*EntryView, error) {
	all, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrEntryQueryFailed)
	}

	views := make([]*EntryView, len(all))
	for i, e := range all {
		views[i] = toEntryView(e)
	}
	return views, nil
}

func (q *entryQueriesImpl) Summarize(ctx context.Context, name string) (*SummaryView, error) {
	if s, ok := q.cache.Get(ctx, name); ok {
		return toSummaryView(s)
	}

	// The cache is filled under the store's read lock so an insert, and the
	// flush that follows it, cannot slip in between resolving and caching.
	var s *summary.Summary
	err := q.store.Read(ctx, func(ctx context.Context, r summary.EntryReader) error {
		var rerr error
		s, rerr = q.resolver.Summarize(r, name)
		if rerr != nil {
			return rerr
		}
		q.cache.Set(ctx, s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.HasDangling() {
		q.logger.Warn("Summary skipped missing dependencies",
			"project", name,
			"missing", s.Dangling,
		)
	}

	return toSummaryView(s)
}

func toEntryView(e *entry.Entry) *EntryView {
	v := &EntryView{
		Type: e.Kind().String(),
		Name: e.Name(),
	}
	if e.IsResource() {
		v.BuildTime = ptr.Of(e.BuildTime().Value())
		return v
	}

	reqs := e.Requirements()
	v.RequiredResources = make([]RequirementView, len(reqs))
	for i, r := range reqs {
		v.RequiredResources[i] = RequirementView{Name: r.Name(), Quantity: r.Quantity().Value()}
	}
	return v
}

func toSummaryView(s *summary.Summary) (*SummaryView, error) {
	v := &SummaryView{
		Name:      s.Name,
		BuildTime: s.BuildTime,
	}
	if err := copier.Copy(&v.Resources, s.Resources); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to copy summary resources"), ErrEntryQueryFailed)
	}
	return v, nil
}
