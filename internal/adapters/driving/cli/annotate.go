package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/logger"
)

var (
	annotateGlossary  string
	annotateRoute     string
	annotateComponent string
	annotateOut       string
	annotateWrite     bool
	annotateDryRun    bool
	annotateReport    bool
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [path]...",
	Short: "Annotate markdown documents with glossary terms",
	Long: `Annotates one or more markdown/MDX files. Directories are walked
recursively for .md and .mdx files.

By default the annotated output is printed to stdout. Use --write to
update files in place, or --out to write into a separate directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateGlossary, "glossary", "g", "", "glossary JSON file (default from config)")
	annotateCmd.Flags().StringVarP(&annotateRoute, "route", "r", "", "glossary page route (default from config)")
	annotateCmd.Flags().StringVar(&annotateComponent, "component", "", "annotation component identifier")
	annotateCmd.Flags().StringVarP(&annotateOut, "out", "o", "", "output directory")
	annotateCmd.Flags().BoolVarP(&annotateWrite, "write", "w", false, "rewrite files in place")
	annotateCmd.Flags().BoolVar(&annotateDryRun, "dry-run", false, "report matches without writing output")
	annotateCmd.Flags().BoolVar(&annotateReport, "report", false, "record coverage in the report store")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if config == nil || config.NewAnnotateService == nil {
		return errors.New("annotate service not configured")
	}

	opts := AnnotateOptions{
		GlossaryPath: annotateGlossary,
		Route:        annotateRoute,
		Component:    annotateComponent,
		Plurals:      config.DefaultPlurals,
		WithReport:   annotateReport,
	}
	if opts.GlossaryPath == "" {
		opts.GlossaryPath = config.DefaultGlossaryPath
	}
	if opts.Route == "" {
		opts.Route = config.DefaultRoute
	}

	service, cleanup, err := config.NewAnnotateService(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	paths, err := collectDocuments(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no markdown documents found")
	}

	ctx := context.Background()
	total := 0
	for _, path := range paths {
		logger.Section(path)

		result, err := service.AnnotateFile(ctx, path)
		if err != nil {
			return fmt.Errorf("annotating %s: %w", path, err)
		}
		total += result.Annotations

		switch {
		case annotateDryRun:
			cmd.Printf("%s: %d annotation(s)\n", path, result.Annotations)
		case annotateWrite:
			if err := os.WriteFile(path, result.Output, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			cmd.Printf("%s: %d annotation(s)\n", path, result.Annotations)
		case annotateOut != "":
			dest := filepath.Join(annotateOut, filepath.Base(path))
			if err := os.MkdirAll(annotateOut, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := os.WriteFile(dest, result.Output, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
			cmd.Printf("%s -> %s: %d annotation(s)\n", path, dest, result.Annotations)
		default:
			cmd.Print(string(result.Output))
		}
	}

	if annotateDryRun || annotateWrite || annotateOut != "" {
		cmd.Printf("annotated %d document(s), %d annotation(s) total\n", len(paths), total)
	}
	return nil
}

// collectDocuments expands the path arguments: named files must be
// markdown documents, directories are walked for them.
func collectDocuments(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			switch strings.ToLower(filepath.Ext(arg)) {
			case ".md", ".mdx":
				paths = append(paths, arg)
			default:
				return nil, fmt.Errorf("%s: %w", arg, domain.ErrUnsupportedType)
			}
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".md", ".mdx":
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}
