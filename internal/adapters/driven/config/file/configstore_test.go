package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ConfigStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestConfigStore_SetGet(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("glossary.path", "/docs/glossary.json"))
	assert.Equal(t, "/docs/glossary.json", store.GetString("glossary.path"))

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing.key"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Set("annotate.route", "/reference/glossary"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/reference/glossary", reopened.Route())
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[glossary]\npath = \"/data/terms.json\"\n\n" +
		"[annotate]\nroute = \"/glossary\"\ncomponent = \"Term\"\nplurals = false\n\n" +
		"[cache]\nttl_seconds = 120\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/data/terms.json", store.GlossaryPath())
	assert.Equal(t, "/glossary", store.Route())
	assert.Equal(t, "Term", store.Component())
	assert.False(t, store.Plurals())
	assert.Equal(t, 2*time.Minute, store.CacheTTL())
}

func TestConfigStore_Defaults(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Empty(t, store.GlossaryPath())
	assert.Empty(t, store.Route())
	assert.Empty(t, store.Component())
	assert.True(t, store.Plurals())
	assert.Zero(t, store.CacheTTL())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("cache.ttl_seconds", 45))
	assert.Equal(t, 45, store.GetInt("cache.ttl_seconds"))

	require.NoError(t, store.Set("annotate.plurals", false))
	assert.False(t, store.GetBool("annotate.plurals", true))

	// Wrong types fall back safely.
	require.NoError(t, store.Set("glossary.path", 7))
	assert.Empty(t, store.GetString("glossary.path"))
	assert.Equal(t, 0, store.GetInt("annotate.plurals"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)

	_, statErr := os.Stat(filepath.Join(dir, "config.toml"))
	assert.True(t, os.IsNotExist(statErr))
}
