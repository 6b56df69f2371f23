// Package file loads glossary data from JSON files on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/glossa-cli/internal/glossary"
	"github.com/custodia-labs/glossa-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.GlossaryStore = (*Store)(nil)

// DefaultTTL is how long a loaded glossary snapshot is served before the
// source file is re-read. Batch builds annotate many documents against
// the same glossary; the TTL avoids one disk read per document.
const DefaultTTL = 30 * time.Second

// Store is a file-based glossary store with snapshot caching.
type Store struct {
	cache    driven.GlossaryCache
	clock    driven.Clock
	ttl      time.Duration
	failOpen bool
}

// Option configures the store.
type Option func(*Store)

// WithCache sets the snapshot cache. Without one, every load reads disk.
func WithCache(cache driven.GlossaryCache) Option {
	return func(s *Store) {
		s.cache = cache
	}
}

// WithClock injects the time source used for TTL expiry.
func WithClock(clock driven.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTTL sets the snapshot lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFailOpen makes Load log validation errors and proceed with the
// valid subset instead of failing. Invalid entries are still reported.
func WithFailOpen(enabled bool) Option {
	return func(s *Store) {
		s.failOpen = enabled
	}
}

// NewStore creates a glossary file store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		clock: driven.SystemClock(),
		ttl:   DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the validated glossary at path, serving a cached snapshot
// when one is fresh. Snapshots are immutable once published; a concurrent
// duplicate load wastes one file read but never exposes partial state.
func (s *Store) Load(ctx context.Context, path string) (*domain.Glossary, error) {
	if path == "" {
		return nil, domain.ErrGlossaryNotConfigured
	}

	now := s.clock.Now()
	if s.cache != nil {
		if entry, ok := s.cache.Get(path); ok && now.Sub(entry.LoadedAt) < s.ttl {
			logger.Debug("glossary cache hit for %s", path)
			return entry.Glossary, nil
		}
	}

	g, err := s.read(path)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Put(path, driven.CacheEntry{Glossary: g, LoadedAt: now})
	}
	logger.Debug("loaded glossary %s: %d term(s)", path, g.Len())
	return g, nil
}

// read decodes and validates the glossary file.
func (s *Store) read(path string) (*domain.Glossary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glossary file: %w", err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing glossary file %s: %w", path, err)
	}

	opts := glossary.Options{FailOnError: !s.failOpen}
	result, err := glossary.Validate(data, opts)
	if err != nil {
		return nil, fmt.Errorf("validating glossary file %s: %w", path, err)
	}
	if !result.Valid {
		agg := &domain.InvalidGlossaryError{Errors: result.Errors}
		logger.Warn("glossary %s has invalid entries, continuing with %d valid term(s): %v",
			path, result.Glossary.Len(), agg)
	}
	return &result.Glossary, nil
}
