package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/dockerize"
	"github.com/dublyo/dockergen/internal/lint"
)

// ValidationOutput is the JSON output for validate command
type ValidationOutput struct {
	Valid    bool         `json:"valid"`
	Stages   int          `json:"stages"`
	Errors   []lint.Issue `json:"errors,omitempty"`
	Warnings []lint.Issue `json:"warnings,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [dockerfile]",
	Short: "Validate a Dockerfile",
	Long: `Validate a Dockerfile for common issues and best practices.

This performs syntax validation and checks for common mistakes like:
- Missing FROM instruction
- Invalid instruction syntax
- Deprecated practices

Without an argument, the Dockerfile in --dir (or the current directory)
is checked.

Examples:
  dockergen validate
  dockergen validate ./my-project/Dockerfile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := filepath.Join(dirFlag, dockerize.DefaultDockerfile)
	if len(args) > 0 {
		path = args[0]
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	report := lint.Dockerfile(string(content))

	if jsonOut {
		if err := writeJSON(cmd.OutOrStdout(), ValidationOutput{
			Valid:    report.Valid(),
			Stages:   report.Stages,
			Errors:   report.Errors,
			Warnings: report.Warnings,
		}); err != nil {
			return err
		}
		return report.Err()
	}

	if len(report.Errors) == 0 && len(report.Warnings) == 0 {
		printer.Success("Dockerfile is valid")
		printVerbose("%d stage(s)", report.Stages)
		return nil
	}

	if len(report.Errors) > 0 {
		printInfo("Errors:")
		for _, e := range report.Errors {
			printInfo("  Line %d: %s", e.Line, e.Message)
		}
	}

	if len(report.Warnings) > 0 {
		printInfo("Warnings:")
		for _, w := range report.Warnings {
			printer.Warn("Line %d: %s", w.Line, w.Message)
		}
	}

	return report.Err()
}
