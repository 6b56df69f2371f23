package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Inspect and validate glossary data",
}

var glossaryValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a glossary JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlossaryValidate,
}

var glossaryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show term coverage from past annotation runs",
	RunE:  runGlossaryStats,
}

func init() {
	glossaryCmd.AddCommand(glossaryValidateCmd)
	glossaryCmd.AddCommand(glossaryStatsCmd)
	rootCmd.AddCommand(glossaryCmd)
}

func runGlossaryValidate(cmd *cobra.Command, args []string) error {
	if config == nil || config.NewGlossaryService == nil {
		return errors.New("glossary service not configured")
	}

	service, cleanup, err := config.NewGlossaryService(false)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.Validate(context.Background(), args[0])
	if err != nil {
		return err
	}

	if result.Valid {
		cmd.Printf("%s: %d term(s), no errors\n", args[0], result.Glossary.Len())
		return nil
	}

	cmd.Printf("%s: %d valid term(s), %d error(s)\n", args[0], result.Glossary.Len(), len(result.Errors))
	for i, ve := range result.Errors {
		line := fmt.Sprintf("  %d. %s: %s", i+1, ve.Field, ve.Message)
		if preview := ve.Preview(); preview != "" {
			line += fmt.Sprintf(" (value: %s)", preview)
		}
		cmd.Println(line)
	}
	return fmt.Errorf("glossary %s is invalid", args[0])
}

func runGlossaryStats(cmd *cobra.Command, _ []string) error {
	if config == nil || config.NewGlossaryService == nil {
		return errors.New("glossary service not configured")
	}

	service, cleanup, err := config.NewGlossaryService(true)
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := service.Stats(context.Background())
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		cmd.Println("No coverage recorded yet. Run `glossa annotate --report` first.")
		return nil
	}

	cmd.Println("Term coverage:")
	for _, stat := range stats {
		cmd.Printf("  %-30s %4d hit(s) in %d document(s)\n", stat.Term, stat.Hits, stat.Documents)
	}
	return nil
}
