package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
)

// GlossaryStore loads validated glossaries from a source location.
type GlossaryStore interface {
	// Load reads, validates and returns the glossary at the given path.
	// Implementations may serve cached snapshots; callers must treat the
	// returned glossary as immutable.
	Load(ctx context.Context, path string) (*domain.Glossary, error)
}

// CacheEntry is an immutable published snapshot of a loaded glossary.
type CacheEntry struct {
	// Glossary is the validated snapshot. Never mutated after publish.
	Glossary *domain.Glossary

	// LoadedAt is when the snapshot was read from the source.
	LoadedAt time.Time
}

// GlossaryCache caches glossary snapshots keyed by source path.
//
// Entries are immutable once published. Concurrent Get/Put must be safe;
// a duplicate concurrent load-and-publish race is acceptable (it wastes
// one read) as long as a half-written entry is never exposed.
type GlossaryCache interface {
	// Get returns the cached entry and true, or false when absent.
	Get(key string) (CacheEntry, bool)

	// Put publishes a snapshot. Last writer wins.
	Put(key string, entry CacheEntry)
}

// Clock supplies the current time. Injected so cache expiry is testable.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
