package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps records in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

// Get retrieves the record for a digest.
func (s *MemoryStore) Get(ctx context.Context, digest string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[digest]
	if !ok {
		return Record{}, fmt.Errorf("record %s: %w", digest, ErrNotFound)
	}
	return rec, nil
}

// Put stores the record unless its digest is already catalogued.
func (s *MemoryStore) Put(ctx context.Context, rec Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recs[rec.Digest]; ok {
		return false, nil
	}
	s.recs[rec.Digest] = rec
	return true, nil
}

// List returns all records sorted by digest.
func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]Record, 0, len(s.recs))
	for _, rec := range s.recs {
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b Record) int { return strings.Compare(a.Digest, b.Digest) })
	return recs, nil
}

// Delete removes the record for a digest. Missing digests are not an
// error.
func (s *MemoryStore) Delete(ctx context.Context, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, digest)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
