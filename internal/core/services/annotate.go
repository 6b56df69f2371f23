package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/glossa-cli/internal/logger"
)

// Ensure AnnotateService implements the interface.
var _ driving.AnnotateService = (*AnnotateService)(nil)

// AnnotateService annotates documents with glossary term references.
type AnnotateService struct {
	glossaryStore driven.GlossaryStore
	parser        driven.DocumentParser
	renderer      driven.DocumentRenderer
	transformers  driven.TransformerFactory
	reportStore   driven.ReportStore
	glossaryPath  string
}

// NewAnnotateService creates a new annotate service. reportStore may be
// nil; coverage recording is then skipped.
func NewAnnotateService(
	glossaryStore driven.GlossaryStore,
	parser driven.DocumentParser,
	renderer driven.DocumentRenderer,
	transformers driven.TransformerFactory,
	reportStore driven.ReportStore,
	glossaryPath string,
) *AnnotateService {
	return &AnnotateService{
		glossaryStore: glossaryStore,
		parser:        parser,
		renderer:      renderer,
		transformers:  transformers,
		reportStore:   reportStore,
		glossaryPath:  glossaryPath,
	}
}

// AnnotateFile reads, annotates and returns a single document.
func (s *AnnotateService) AnnotateFile(ctx context.Context, path string) (*driving.AnnotateResult, error) {
	if s.parser == nil || s.renderer == nil {
		return nil, domain.ErrInvalidInput
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	tree, err := s.parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	count, err := s.AnnotateTree(ctx, tree)
	if err != nil {
		return nil, err
	}

	output, err := s.renderer.Render(tree)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}

	result := &driving.AnnotateResult{
		Path:        path,
		Annotations: count,
		Changed:     count > 0 && !bytes.Equal(source, output),
		Output:      output,
	}

	if s.reportStore != nil {
		if err := s.saveReport(ctx, path, tree, count); err != nil {
			// Coverage recording must not block annotation output.
			logger.Warn("saving report for %s: %v", path, err)
		}
	}
	return result, nil
}

// AnnotateTree runs the scanner over an already-parsed tree and returns
// the number of annotations emitted.
func (s *AnnotateService) AnnotateTree(ctx context.Context, tree *domain.Node) (int, error) {
	if s.glossaryStore == nil || s.transformers == nil {
		return 0, domain.ErrGlossaryNotConfigured
	}

	g, err := s.glossaryStore.Load(ctx, s.glossaryPath)
	if err != nil {
		return 0, err
	}

	before := countAnnotations(tree, nil)
	s.transformers.ForGlossary(g).Transform(tree)
	after := countAnnotations(tree, nil)

	emitted := after - before
	logger.Debug("scanner emitted %d annotation(s)", emitted)
	return emitted, nil
}

// saveReport records per-term hits for the document.
func (s *AnnotateService) saveReport(ctx context.Context, path string, tree *domain.Node, count int) error {
	hits := make(map[string]int)
	countAnnotations(tree, hits)

	return s.reportStore.SaveReport(ctx, &driven.Report{
		ID:           uuid.New().String(),
		DocumentPath: path,
		Annotations:  count,
		TermHits:     hits,
		AnnotatedAt:  time.Now(),
	})
}

// countAnnotations walks the tree counting annotation nodes. When hits is
// non-nil, per-term counts are accumulated into it keyed by case-folded
// term.
func countAnnotations(n *domain.Node, hits map[string]int) int {
	if n == nil {
		return 0
	}
	count := 0
	if n.Type == domain.NodeAnnotation || n.Type == domain.NodeAnnotationInline {
		count++
		if hits != nil {
			hits[strings.ToLower(n.Term)]++
		}
	}
	for _, child := range n.Children {
		count += countAnnotations(child, hits)
	}
	return count
}
