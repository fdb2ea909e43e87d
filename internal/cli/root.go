// Package cli provides the command-line interface for dockergen.
// Copyright (c) 2026 Dublyo. All rights reserved.
// Licensed under the MIT License.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dublyo/dockergen/internal/config"
	"github.com/dublyo/dockergen/internal/dockerize"
	"github.com/dublyo/dockergen/internal/logging"
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/internal/ui"
)

// StdoutPath as --output prints the Dockerfile instead of writing it
const StdoutPath = "-"

var (
	// Version information (set at build time)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	dirFlag    string
	configFile string

	// Set up by setup before any command runs
	cfg     *config.Config
	logger  = zap.NewNop()
	printer = ui.NewPrinter(os.Stdout, os.Stderr, false)
)

// GenerateOutput is the JSON output of the root command
type GenerateOutput struct {
	Type        string `json:"type"`
	Detected    bool   `json:"detected"`
	EntryPoint  string `json:"entrypoint"`
	Port        string `json:"port"`
	ExposedPort string `json:"exposedPort,omitempty"`
	Family      string `json:"family"`
	Stages      int    `json:"stages"`
	Multistage  bool   `json:"multistage"`
	OutputPath  string `json:"outputPath,omitempty"`
	Written     bool   `json:"written"`
	Error       string `json:"error,omitempty"`
}

var rootCmd = &cobra.Command{
	Use:   "dockergen [path]",
	Short: "Generate a Dockerfile for a project directory",
	Long: `dockergen - Dockerfile generator

Detects a project's type from its package.json and marker files, resolves
the command that starts it, and writes a Dockerfile built from the template
for that type.

Examples:
  # Generate ./Dockerfile for the current directory
  dockergen

  # Generate for another project on port 8080
  dockergen -d ./my-project -p 8080

  # Skip detection and print to stdout
  dockergen --type golang --output -

Configuration is read from .dockergen.yml, ~/.config/dockergen/config.yml,
a .env file and DOCKERGEN_* environment variables; flags win.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printer.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Project directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: .dockergen.yml, then ~/.config/dockergen/config.yml)")

	addBuildFlags(rootCmd)
	rootCmd.Flags().StringP("output", "o", "", "Dockerfile path, or - for stdout (default: <dir>/Dockerfile)")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup loads configuration and builds the logger and printer
func setup(cmd *cobra.Command, args []string) error {
	var loaded *config.Config
	var err error
	if configFile != "" {
		loaded, err = config.LoadFromFile(configFile)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return err
	}
	cfg = loaded
	if !cmd.Flags().Changed("verbose") && cfg.Defaults.Verbose {
		verbose = true
	}

	logger = logging.MustNew(logging.Options{Verbose: verbose, JSON: jsonOut, Quiet: quiet})
	printer = ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet || jsonOut)
	return nil
}

func newService() *dockerize.Service {
	return dockerize.New(dockerize.WithLogger(logger))
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// targetDir picks the project directory from the positional argument or --dir
func targetDir(args []string) (string, error) {
	switch {
	case len(args) > 0 && dirFlag != "" && args[0] != dirFlag:
		return "", fmt.Errorf("both --dir %q and path %q given", dirFlag, args[0])
	case len(args) > 0:
		return args[0], nil
	case dirFlag != "":
		return dirFlag, nil
	default:
		return ".", nil
	}
}

// addBuildFlags registers the flags shared by every command that renders
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Project type, skipping detection (see 'dockergen detect --all')")
	cmd.Flags().StringP("port", "p", "", "Port to expose (default: 3000)")
	cmd.Flags().StringP("entrypoint", "e", "", "Entry point override")
	cmd.Flags().Bool("multistage", true, "Prefer a multi-stage build where the stack offers one")
}

// buildOptions reads the build flags, falling back to configured defaults
func buildOptions(cmd *cobra.Command, dir string) dockerize.Options {
	typeName, _ := cmd.Flags().GetString("type")
	port, _ := cmd.Flags().GetString("port")
	entry, _ := cmd.Flags().GetString("entrypoint")
	multistage, _ := cmd.Flags().GetBool("multistage")

	if port == "" {
		port = cfg.Defaults.Port
	}
	if !cmd.Flags().Changed("multistage") {
		multistage = cfg.Defaults.Multistage
	}

	opts := dockerize.Options{
		Dir:         dir,
		Port:        port,
		EntryPoint:  entry,
		SingleStage: !multistage,
	}
	if typeName != "" {
		t, known := stack.Parse(typeName)
		if !known {
			printer.Warn("%q is not a built-in type; using the generic template", typeName)
		}
		opts.Type = t
	}
	return opts
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, err := targetDir(args)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Defaults.Output
	}
	toStdout := output == StdoutPath
	if toStdout {
		// stdout carries the Dockerfile only
		printer = ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), true)
	}

	opts := buildOptions(cmd, dir)
	opts.Output = output
	if toStdout {
		opts.Output = ""
		opts.DryRun = true
	}

	ctx, cancel := signalContext()
	defer cancel()

	if !toStdout {
		printInfo("Scanning %s...", dir)
	}
	res, err := newService().GenerateDockerfile(ctx, opts)
	if res == nil {
		return err
	}

	if jsonOut {
		if encErr := writeJSON(cmd.OutOrStdout(), generateOutput(res, err)); encErr != nil {
			return encErr
		}
		return err
	}

	if toStdout {
		_, werr := fmt.Fprintln(cmd.OutOrStdout(), res.Dockerfile)
		return werr
	}

	printResult(res)
	if err != nil {
		return err
	}
	printer.Success("Dockerfile created at %s", res.OutputPath)
	return nil
}

func generateOutput(res *dockerize.Result, err error) GenerateOutput {
	out := GenerateOutput{
		Type:        res.Type.String(),
		Detected:    res.Detected,
		EntryPoint:  res.EntryPoint,
		Port:        res.Port,
		ExposedPort: res.ExposedPort,
		Family:      string(res.Family),
		Stages:      res.Stages,
		Multistage:  res.Multistage,
		OutputPath:  res.OutputPath,
		Written:     res.Written,
	}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

func printResult(res *dockerize.Result) {
	if res.Detected {
		if res.Type == stack.Unknown {
			printer.Warn("Could not detect the project type; using the generic template")
		} else {
			printer.Success("Detected project type: %s", res.Type)
		}
	}
	printer.Field("Type", res.Type.String())
	printer.Field("Entry point", res.EntryPoint)
	if res.ExposedPort != "" {
		printer.Field("Port", res.ExposedPort)
	}
	printer.Field("Template", fmt.Sprintf("%s (%d stage(s))", res.Family, res.Stages))
	if verbose {
		printInfo("")
		printInfo("%s", res.Dockerfile)
		printInfo("")
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Print helpers
func printInfo(format string, args ...interface{}) {
	printer.Info(format, args...)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		printer.Info(format, args...)
	}
}
