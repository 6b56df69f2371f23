// Package cli implements the cobra command tree for Glossa.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/glossa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/glossa-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// AnnotateOptions carries the per-invocation settings resolved from flags
// and configuration.
type AnnotateOptions struct {
	// GlossaryPath is the glossary JSON file to load.
	GlossaryPath string

	// Route is the glossary page route annotations link to.
	Route string

	// Component overrides the annotation component identifier.
	Component string

	// Plurals toggles simple-plural matching.
	Plurals bool

	// WithReport enables coverage recording.
	WithReport bool
}

// Config wires the CLI to the application services. The constructors
// return a cleanup function that releases any opened stores.
type Config struct {
	// NewAnnotateService builds an annotate service for one invocation.
	NewAnnotateService func(opts AnnotateOptions) (driving.AnnotateService, func(), error)

	// NewGlossaryService builds the glossary service; withReports
	// controls whether the report store is opened.
	NewGlossaryService func(withReports bool) (driving.GlossaryService, func(), error)

	// DefaultGlossaryPath is the configured glossary file path.
	DefaultGlossaryPath string

	// DefaultRoute is the configured glossary page route.
	DefaultRoute string

	// DefaultPlurals is the configured simple-plural toggle.
	DefaultPlurals bool
}

// config holds the current CLI configuration.
var config *Config

// SetConfig sets the configuration for all commands.
func SetConfig(cfg *Config) {
	config = cfg
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "glossa",
	Short: "Annotate markdown documentation with glossary terms",
	Long: `Glossa rewrites plain-text glossary term mentions in markdown/MDX
documents into tooltip-bearing component elements, leaving code, links
and existing annotations untouched.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
