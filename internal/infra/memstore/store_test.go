//go:build unit

package memstore_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"entry-registry/internal/domain/entry"
	"entry-registry/internal/domain/summary"
	"entry-registry/internal/infra"
	"entry-registry/internal/infra/memstore"
	"entry-registry/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(entry.Entry{}, entry.BuildTime{}, entry.Requirement{}, entry.Quantity{}),
	cmpopts.EquateEmpty(),
}

func newStore() *memstore.Store {
	return memstore.NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("insert then find returns the same entry", func(t *testing.T) {
		s := newStore()
		wood := builder.NewResourceBuilder().MustBuildDomain()

		require.NoError(t, s.Insert(ctx, wood))

		got, err := s.FindByName(ctx, "wood")
		require.NoError(t, err)
		if diff := cmp.Diff(wood, got, cmpOpts...); diff != "" {
			t.Errorf("Entry mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, s.Count())
	})

	t.Run("name collision across variants leaves the store untouched", func(t *testing.T) {
		s := newStore()
		require.NoError(t, s.Insert(ctx, builder.NewResourceBuilder().WithName("table").MustBuildDomain()))

		err := s.Insert(ctx, builder.NewProjectBuilder().WithName("table").MustBuildDomain())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

		got, err := s.FindByName(ctx, "table")
		require.NoError(t, err)
		assert.True(t, got.IsResource())
		assert.Equal(t, 1, s.Count())
	})

	t.Run("names are keyed on the exact string", func(t *testing.T) {
		s := newStore()
		padded := builder.NewResourceBuilder().WithName(" wood ").MustBuildDomain()
		plain := builder.NewResourceBuilder().WithName("wood").WithBuildTime(3).MustBuildDomain()

		require.NoError(t, s.Insert(ctx, padded))
		require.NoError(t, s.Insert(ctx, plain))

		got, err := s.FindByName(ctx, " wood ")
		require.NoError(t, err)
		if diff := cmp.Diff(padded, got, cmpOpts...); diff != "" {
			t.Errorf("Entry mismatch (-want +got):\n%s", diff)
		}
		got, err = s.FindByName(ctx, "wood")
		require.NoError(t, err)
		assert.Equal(t, 3.0, got.BuildTime().Value())
		assert.Equal(t, 2, s.Count())
	})

	t.Run("nil entry", func(t *testing.T) {
		err := newStore().Insert(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindInvalidInput))
	})
}

func TestStore_Find(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	for _, b := range builder.TableScenario() {
		require.NoError(t, s.Insert(ctx, b.MustBuildDomain()))
	}

	t.Run("missing name", func(t *testing.T) {
		got, err := s.FindByName(ctx, "chair")
		require.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("find all is sorted by name", func(t *testing.T) {
		all, err := s.FindAll(ctx)
		require.NoError(t, err)

		names := make([]string, len(all))
		for i, e := range all {
			names[i] = e.Name()
		}
		assert.Equal(t, []string{"nail", "table", "wood"}, names)
	})

	t.Run("read exposes the registry to the resolver", func(t *testing.T) {
		var got *summary.Summary
		err := s.Read(ctx, func(_ context.Context, r summary.EntryReader) error {
			var rerr error
			got, rerr = summary.NewResolver(0).Summarize(r, "table")
			return rerr
		})
		require.NoError(t, err)
		assert.Equal(t, 16.0, got.BuildTime)
	})

	t.Run("read propagates the callback error", func(t *testing.T) {
		err := s.Read(ctx, func(_ context.Context, r summary.EntryReader) error {
			_, rerr := summary.NewResolver(0).Summarize(r, "nail")
			return rerr
		})
		require.ErrorIs(t, err, summary.ErrNotAProject)
	})
}

func TestStore_ConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	const workers = 16
	const names = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := map[string]int{}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < names; i++ {
				name := fmt.Sprintf("r%d", i)
				e := builder.NewResourceBuilder().WithName(name).MustBuildDomain()
				if err := s.Insert(ctx, e); err == nil {
					mu.Lock()
					wins[name]++
					mu.Unlock()
				}
				_ = s.Read(ctx, func(_ context.Context, r summary.EntryReader) error {
					_, _ = r.Find(name)
					return nil
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, names, s.Count())
	for name, n := range wins {
		assert.Equal(t, 1, n, "name %s inserted more than once", name)
	}
}

// ================================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ================================================================================

func TestStore_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		s := newStore()
		inserted := map[string]*entry.Entry{}

		numOps := rapid.IntRange(1, 60).Draw(t, "numOps")
		for i := 0; i < numOps; i++ {
			name := rapid.StringMatching(`[a-e]{1,2}`).Draw(t, "name")
			var e *entry.Entry
			if rapid.Bool().Draw(t, "isResource") {
				bt := rapid.Float64Range(0, 1000).Draw(t, "buildTime")
				e = builder.NewResourceBuilder().WithName(name).WithBuildTime(bt).MustBuildDomain()
			} else {
				e = builder.NewProjectBuilder().WithName(name).MustBuildDomain()
			}

			err := s.Insert(ctx, e)
			if _, taken := inserted[name]; taken {
				if !infra.IsKind(err, infra.KindDuplicateKey) {
					t.Fatalf("second insert of %s: got %v, want duplicate key", name, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("insert %s: %v", name, err)
			}
			inserted[name] = e
		}

		if s.Count() != len(inserted) {
			t.Fatalf("count %d, want %d", s.Count(), len(inserted))
		}
		for name, want := range inserted {
			got, err := s.FindByName(ctx, name)
			if err != nil {
				t.Fatalf("find %s: %v", name, err)
			}
			if got != want {
				t.Fatalf("find %s returned a different entry", name)
			}
		}
	})
}
