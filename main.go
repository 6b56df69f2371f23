// Command glossa annotates markdown documentation with glossary terms.
package main

import (
	"fmt"
	"os"

	configfile "github.com/custodia-labs/glossa-cli/internal/adapters/driven/config/file"
	glossaryfile "github.com/custodia-labs/glossa-cli/internal/adapters/driven/glossary/file"
	"github.com/custodia-labs/glossa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/glossa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/glossa-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/glossa-cli/internal/core/services"
	"github.com/custodia-labs/glossa-cli/internal/markdown"
	"github.com/custodia-labs/glossa-cli/internal/scanner"
)

// version is set at build time via -ldflags.
var version = "dev"

// defaultRoute is used when neither flag nor config names the glossary
// page route.
const defaultRoute = "/glossary"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "glossa: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// One snapshot cache shared by every annotate invocation in this
	// process, so batch runs read the glossary file once per TTL window.
	cache := memory.NewGlossaryCache()

	cfg := &cli.Config{
		DefaultGlossaryPath: configStore.GlossaryPath(),
		DefaultRoute:        configStore.Route(),
		DefaultPlurals:      configStore.Plurals(),

		NewAnnotateService: func(opts cli.AnnotateOptions) (driving.AnnotateService, func(), error) {
			component := opts.Component
			if component == "" {
				component = configStore.Component()
			}
			if component == "" {
				component = scanner.DefaultComponent
			}
			route := opts.Route
			if route == "" {
				route = defaultRoute
			}

			storeOpts := []glossaryfile.Option{
				glossaryfile.WithCache(cache),
				glossaryfile.WithFailOpen(true),
			}
			if ttl := configStore.CacheTTL(); ttl > 0 {
				storeOpts = append(storeOpts, glossaryfile.WithTTL(ttl))
			}

			var reports driven.ReportStore
			cleanup := func() {}
			if opts.WithReport {
				store, err := sqlite.NewStore("")
				if err != nil {
					return nil, nil, fmt.Errorf("opening report store: %w", err)
				}
				reports = store
				cleanup = func() { store.Close() }
			}

			service := services.NewAnnotateService(
				glossaryfile.NewStore(storeOpts...),
				markdown.NewParser(),
				markdown.NewRenderer(markdown.WithRenderComponent(component)),
				scanner.NewFactory(route,
					scanner.WithComponent(component),
					scanner.WithPlurals(opts.Plurals),
				),
				reports,
				opts.GlossaryPath,
			)
			return service, cleanup, nil
		},

		NewGlossaryService: func(withReports bool) (driving.GlossaryService, func(), error) {
			if !withReports {
				return services.NewGlossaryService(nil), func() {}, nil
			}
			store, err := sqlite.NewStore("")
			if err != nil {
				return nil, nil, fmt.Errorf("opening report store: %w", err)
			}
			return services.NewGlossaryService(store), func() { store.Close() }, nil
		},
	}

	cli.SetConfig(cfg)
	cli.SetVersion(version)
	return cli.Execute()
}
