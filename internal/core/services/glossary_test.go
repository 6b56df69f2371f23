package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driving"
)

type fakeCoverageStore struct {
	fakeReportStore
	coverage []driven.TermCoverage
	err      error
}

func (f *fakeCoverageStore) Coverage(_ context.Context) ([]driven.TermCoverage, error) {
	return f.coverage, f.err
}

func writeGlossaryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glossary.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGlossaryService_Validate(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeGlossaryFile(t, `{"terms": [{"term": "API", "definition": "x"}]}`)

		result, err := NewGlossaryService(nil).Validate(context.Background(), path)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 1, result.Glossary.Len())
	})

	t.Run("shape problems land in the result", func(t *testing.T) {
		path := writeGlossaryFile(t, `{"terms": [{"term": "", "definition": "x"}]}`)

		result, err := NewGlossaryService(nil).Validate(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "terms[0].term", result.Errors[0].Field)
	})

	t.Run("unreadable json is an error", func(t *testing.T) {
		path := writeGlossaryFile(t, `{"terms": `)
		_, err := NewGlossaryService(nil).Validate(context.Background(), path)
		assert.ErrorContains(t, err, "parsing glossary file")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := NewGlossaryService(nil).Validate(context.Background(),
			filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "reading glossary file")
	})
}

func TestGlossaryService_Stats(t *testing.T) {
	t.Run("maps coverage rows", func(t *testing.T) {
		store := &fakeCoverageStore{coverage: []driven.TermCoverage{
			{Term: "api", Documents: 3, Hits: 9},
			{Term: "sdk", Documents: 1, Hits: 2},
		}}

		stats, err := NewGlossaryService(store).Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []driving.TermStat{
			{Term: "api", Documents: 3, Hits: 9},
			{Term: "sdk", Documents: 1, Hits: 2},
		}, stats)
	})

	t.Run("no report store", func(t *testing.T) {
		_, err := NewGlossaryService(nil).Stats(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		storeErr := errors.New("db gone")
		_, err := NewGlossaryService(&fakeCoverageStore{err: storeErr}).Stats(context.Background())
		assert.ErrorIs(t, err, storeErr)
	})
}
