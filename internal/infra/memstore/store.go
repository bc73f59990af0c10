// Package memstore holds the process-wide entry registry. It starts empty when
// the process starts and is dropped with it; nothing is persisted.
package memstore

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"entry-registry/internal/domain/entry"
	"entry-registry/internal/domain/summary"
	"entry-registry/internal/infra"
)

// Store is the only owner of registered entries. Inserts take the write lock;
// every read, including a whole resolver walk via Read, takes the read lock.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry.Entry
	logger  *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		entries: make(map[string]*entry.Entry),
		logger:  logger,
	}
}

// Insert stores e under its name. It fails with KindDuplicateKey when the name
// is taken, leaving the store unchanged.
func (s *Store) Insert(_ context.Context, e *entry.Entry) error {
	if e == nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidInput, "entry cannot be nil", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[e.Name()]; exists {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "entry "+e.Name()+" already exists", nil)
	}
	s.entries[e.Name()] = e
	return nil
}

func (s *Store) FindByName(_ context.Context, name string) (*entry.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "entry "+name+" not found", nil)
	}
	return e, nil
}

func (s *Store) FindAll(_ context.Context) ([]*entry.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entry.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Read runs fn against a consistent view of the store while holding the read lock.
// fn must not call back into Insert.
func (s *Store) Read(ctx context.Context, fn func(ctx context.Context, r summary.EntryReader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, lockedReader{entries: s.entries})
}

type lockedReader struct {
	entries map[string]*entry.Entry
}

func (r lockedReader) Find(name string) (*entry.Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}
