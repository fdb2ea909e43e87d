package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/stack"
)

// EntryPointOutput is the JSON output for entrypoint command
type EntryPointOutput struct {
	Type       string `json:"type"`
	EntryPoint string `json:"entrypoint"`
}

var entrypointCmd = &cobra.Command{
	Use:   "entrypoint [path]",
	Short: "Print the entry point the Dockerfile would start",
	Long: `Print the default entry point for a project.

Known types have a fixed entry point (main.py, npm run build, ...). Other
types use the first .js file in the directory, or index.js.

Examples:
  dockergen entrypoint .
  dockergen entrypoint --type express ./api`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEntryPoint,
}

func init() {
	entrypointCmd.Flags().StringP("type", "t", "", "Project type (default: detected)")
	rootCmd.AddCommand(entrypointCmd)
}

func runEntryPoint(cmd *cobra.Command, args []string) error {
	path, err := targetDir(args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	svc := newService()

	typeName, _ := cmd.Flags().GetString("type")
	t, _ := stack.Parse(typeName)
	if typeName == "" {
		if t, err = svc.DetectProjectType(ctx, path); err != nil {
			return err
		}
		printVerbose("Detected project type: %s", t)
	}

	ep, err := svc.GetEntryPoint(ctx, path, t)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), EntryPointOutput{Type: t.String(), EntryPoint: ep})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ep)
	return err
}
