package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/glossa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
)

func writeGlossary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glossary.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validGlossary = `{"terms": [
	{"term": "API", "definition": "Application Programming Interface"},
	{"term": "SDK", "definition": "Software Development Kit"}
]}`

func TestStore_Load(t *testing.T) {
	path := writeGlossary(t, validGlossary)

	g, err := NewStore().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, "API", g.Terms[0].Term)
}

func TestStore_LoadErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := NewStore().Load(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrGlossaryNotConfigured)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewStore().Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeGlossary(t, `{"terms": [`)
		_, err := NewStore().Load(context.Background(), path)
		assert.ErrorContains(t, err, "parsing glossary file")
	})

	t.Run("validation failure is fatal by default", func(t *testing.T) {
		path := writeGlossary(t, `{"terms": [{"term": "", "definition": "x"}]}`)
		_, err := NewStore().Load(context.Background(), path)
		require.Error(t, err)

		var agg *domain.InvalidGlossaryError
		assert.ErrorAs(t, err, &agg)
	})
}

func TestStore_FailOpen(t *testing.T) {
	path := writeGlossary(t, `{"terms": [
		{"term": "API", "definition": "ok"},
		{"term": "", "definition": "bad"}
	]}`)

	g, err := NewStore(WithFailOpen(true)).Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	assert.Equal(t, "API", g.Terms[0].Term)
}

func TestStore_Caching(t *testing.T) {
	path := writeGlossary(t, validGlossary)

	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	clock := driven.ClockFunc(func() time.Time { return now })
	cache := memory.NewGlossaryCache()
	store := NewStore(WithCache(cache), WithClock(clock), WithTTL(30*time.Second))

	t.Run("fresh snapshot served from cache", func(t *testing.T) {
		first, err := store.Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.Len())

		// Mutate the file; within the TTL the old snapshot is returned.
		require.NoError(t, os.WriteFile(path, []byte(`{"terms": []}`), 0o644))
		now = now.Add(10 * time.Second)

		second, err := store.Load(context.Background(), path)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("expired snapshot triggers a re-read", func(t *testing.T) {
		now = now.Add(time.Minute)

		g, err := store.Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Len())
	})
}

func TestStore_CacheKeyedByPath(t *testing.T) {
	cache := memory.NewGlossaryCache()
	store := NewStore(WithCache(cache))

	pathA := writeGlossary(t, `{"terms": [{"term": "API", "definition": "x"}]}`)
	pathB := writeGlossary(t, `{"terms": [{"term": "SDK", "definition": "y"}]}`)

	a, err := store.Load(context.Background(), pathA)
	require.NoError(t, err)
	b, err := store.Load(context.Background(), pathB)
	require.NoError(t, err)

	assert.Equal(t, "API", a.Terms[0].Term)
	assert.Equal(t, "SDK", b.Terms[0].Term)
	assert.Equal(t, 2, cache.Len())
}
