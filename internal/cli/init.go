package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/dockerize"
	"github.com/dublyo/dockergen/internal/generator"
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/internal/ui"
)

// ErrNotInteractive is returned by init when stdin or stdout is not a terminal
var ErrNotInteractive = errors.New("init needs an interactive terminal; use 'dockergen' with flags instead")

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Interactive Dockerfile setup",
	Long: `Interactively set up a Dockerfile for your project.

This command guides you through:
  1. Project type (pre-selected from detection)
  2. Entry point (pre-filled for the chosen type)
  3. Port, build shape and output path
  4. File generation
  5. Optionally saving the port and build shape as defaults

Examples:
  dockergen init
  dockergen init ./my-project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// DefaultConfigFile is where init saves defaults when --config is not set
const DefaultConfigFile = ".dockergen.yml"

// initAnswers are the values collected by the prompts
type initAnswers struct {
	Type         string
	EntryPoint   string
	Port         string
	Multistage   bool
	Output       string
	SaveDefaults bool
}

func runInit(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return ErrNotInteractive
	}

	dir, err := targetDir(args)
	if err != nil {
		return err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	printInfo("")
	printInfo("  dockergen - Interactive Setup")
	printInfo("")
	printInfo("  Scanning %s...", absDir)

	svc := newService()
	detected, err := svc.DetectProjectType(ctx, absDir)
	if err != nil {
		return err
	}

	answers := initAnswers{
		Type:       detected.String(),
		Port:       cfg.Defaults.Port,
		Multistage: cfg.Defaults.Multistage,
		Output:     cfg.Defaults.Output,
	}
	if answers.Output == "" || answers.Output == StdoutPath {
		answers.Output = filepath.Join(absDir, dockerize.DefaultDockerfile)
	}

	// Separate forms: the entry point default depends on the chosen type.
	if err := runForm(typeField(&answers.Type)); err != nil {
		return err
	}
	t, _ := stack.Parse(answers.Type)

	answers.EntryPoint, err = svc.GetEntryPoint(ctx, absDir, t)
	if err != nil {
		return err
	}
	fields := []huh.Field{
		huh.NewInput().
			Title("Entry point").
			Description("Command or file the container starts").
			Value(&answers.EntryPoint).
			Validate(required("entry point")),
		huh.NewInput().
			Title("Port").
			Value(&answers.Port).
			Validate(required("port")),
	}
	if generator.OffersBothShapes(generator.FamilyFor(t)) {
		fields = append(fields, huh.NewConfirm().
			Title("Multi-stage build?").
			Affirmative("Yes").
			Negative("No").
			Value(&answers.Multistage))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Output path").
			Value(&answers.Output).
			Validate(required("output path")),
		huh.NewConfirm().
			Title("Save port and build shape as defaults?").
			Description(fmt.Sprintf("Written to %s", configPath())).
			Affirmative("Yes").
			Negative("No").
			Value(&answers.SaveDefaults),
	)
	if err := runForm(fields...); err != nil {
		return err
	}

	res, err := svc.GenerateDockerfile(ctx, dockerize.Options{
		Dir:         absDir,
		Type:        t,
		EntryPoint:  answers.EntryPoint,
		Port:        answers.Port,
		SingleStage: !answers.Multistage,
		Output:      answers.Output,
	})
	if err != nil {
		return err
	}

	printInfo("")
	printResult(res)
	printer.Success("Dockerfile created at %s", res.OutputPath)

	if answers.SaveDefaults {
		path := configPath()
		if err := saveDefaults(path, answers); err != nil {
			return err
		}
		printer.Success("Defaults saved to %s", path)
	}
	return nil
}

func configPath() string {
	if configFile != "" {
		return configFile
	}
	return DefaultConfigFile
}

// saveDefaults writes the loaded config with the chosen port and build
// shape as its defaults
func saveDefaults(path string, answers initAnswers) error {
	saved := *cfg
	saved.Defaults.Port = answers.Port
	saved.Defaults.Multistage = answers.Multistage
	if err := saved.Save(path); err != nil {
		return fmt.Errorf("failed to save defaults: %w", err)
	}
	return nil
}

func typeField(value *string) huh.Field {
	known := stack.Known()
	opts := make([]huh.Option[string], 0, len(known))
	for _, t := range known {
		label := t.String()
		if t == stack.Unknown {
			label += " (generic template)"
		}
		opts = append(opts, huh.NewOption(label, t.String()))
	}

	return huh.NewSelect[string]().
		Title("Project type").
		Description("Pre-selected from detection").
		Options(opts...).
		Value(value)
}

func runForm(fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("cancelled")
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
