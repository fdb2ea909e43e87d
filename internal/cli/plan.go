package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dublyo/dockergen/internal/dockerize"
	"github.com/dublyo/dockergen/internal/lint"
)

// PlanVersion is the schema version of BuildPlan
const PlanVersion = "1.0"

// BuildPlan is everything a generate run would do, without the write
type BuildPlan struct {
	Version   string `json:"version" yaml:"version"`
	Generator string `json:"generator" yaml:"generator"`

	// Detection is nil when --type skipped detection
	Detection *DetectionPlan `json:"detection,omitempty" yaml:"detection,omitempty"`

	Parameters PlanParameters `json:"parameters" yaml:"parameters"`
	Template   PlanTemplate   `json:"template" yaml:"template"`
	Lint       *lint.Report   `json:"lint" yaml:"lint"`
	Dockerfile string         `json:"dockerfile" yaml:"dockerfile"`
}

// DetectionPlan contains detection metadata
type DetectionPlan struct {
	Detected   bool     `json:"detected" yaml:"detected"`
	Language   string   `json:"language,omitempty" yaml:"language,omitempty"`
	Provider   string   `json:"provider,omitempty" yaml:"provider,omitempty"`
	Candidates []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// PlanParameters are the inputs to the renderer
type PlanParameters struct {
	Type       string `json:"type" yaml:"type"`
	EntryPoint string `json:"entrypoint" yaml:"entrypoint"`
	Port       string `json:"port" yaml:"port"`
	OutputPath string `json:"outputPath" yaml:"outputPath"`
	Multistage bool   `json:"multistage" yaml:"multistage"`
}

// PlanTemplate describes the selected template
type PlanTemplate struct {
	Family      string `json:"family" yaml:"family"`
	Stages      int    `json:"stages" yaml:"stages"`
	ExposedPort string `json:"exposedPort,omitempty" yaml:"exposedPort,omitempty"`
}

var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Show the build plan without generating files",
	Long: `Output the resolved build plan as JSON or YAML.

The plan holds the detected type, the resolved entry point and port, the
selected template and the Dockerfile that would be written.

Examples:
  dockergen plan ./my-project
  dockergen plan --format yaml ./my-project
  dockergen plan --output plan.json ./my-project
  DOCKERGEN_PORT=8080 dockergen plan .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	addBuildFlags(planCmd)
	planCmd.Flags().String("format", "json", "Output format (json, yaml)")
	planCmd.Flags().StringP("output", "o", "", "Write plan to file instead of stdout")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	path, err := targetDir(args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outputFile, _ := cmd.Flags().GetString("output")

	ctx, cancel := signalContext()
	defer cancel()

	opts := buildOptions(cmd, path)
	if cfg.Defaults.Output != StdoutPath {
		opts.Output = cfg.Defaults.Output
	}
	res, err := newService().Plan(ctx, opts)
	if err != nil {
		return err
	}

	plan := buildPlanFromResult(res)

	var output []byte
	switch format {
	case "yaml", "yml":
		output, err = yaml.Marshal(plan)
	case "json":
		output, err = json.MarshalIndent(plan, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (json, yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		printInfo("Plan written to %s", outputFile)
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return err
}

func buildPlanFromResult(res *dockerize.Result) BuildPlan {
	plan := BuildPlan{
		Version:   PlanVersion,
		Generator: fmt.Sprintf("dockergen %s", Version),
		Parameters: PlanParameters{
			Type:       res.Type.String(),
			EntryPoint: res.EntryPoint,
			Port:       res.Port,
			OutputPath: res.OutputPath,
			Multistage: res.Multistage,
		},
		Template: PlanTemplate{
			Family:      string(res.Family),
			Stages:      res.Stages,
			ExposedPort: res.ExposedPort,
		},
		Lint:       lint.Dockerfile(res.Dockerfile),
		Dockerfile: res.Dockerfile,
	}

	if d := res.Detection; d != nil {
		plan.Detection = &DetectionPlan{
			Detected: d.Detected,
			Language: d.Language,
			Provider: d.Provider,
		}
		for _, c := range d.Candidates {
			plan.Detection.Candidates = append(plan.Detection.Candidates, c.Type.String())
		}
	}

	return plan
}
