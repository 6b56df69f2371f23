package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/glossa-cli/internal/glossary"
)

// Ensure GlossaryService implements the interface.
var _ driving.GlossaryService = (*GlossaryService)(nil)

// GlossaryService exposes glossary validation and coverage reporting.
type GlossaryService struct {
	reportStore driven.ReportStore
}

// NewGlossaryService creates a new glossary service. reportStore may be
// nil; Stats is then unavailable.
func NewGlossaryService(reportStore driven.ReportStore) *GlossaryService {
	return &GlossaryService{reportStore: reportStore}
}

// Validate checks a glossary file and returns the full result, including
// the usable subset when some entries are invalid. The file failing to
// parse as JSON at all is an error; shape problems are reported in the
// result instead.
func (s *GlossaryService) Validate(_ context.Context, path string) (*domain.ValidationResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glossary file: %w", err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing glossary file %s: %w", path, err)
	}

	result, err := glossary.Validate(data, glossary.Options{FailOnError: false})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Stats returns per-term coverage aggregates from past annotation runs.
func (s *GlossaryService) Stats(ctx context.Context) ([]driving.TermStat, error) {
	if s.reportStore == nil {
		return nil, domain.ErrNotFound
	}

	coverage, err := s.reportStore.Coverage(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]driving.TermStat, 0, len(coverage))
	for _, c := range coverage {
		stats = append(stats, driving.TermStat{
			Term:      c.Term,
			Documents: c.Documents,
			Hits:      c.Hits,
		})
	}
	return stats, nil
}
