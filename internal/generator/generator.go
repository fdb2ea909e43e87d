// Package generator renders Dockerfiles from the template catalog and
// writes them to disk.
package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/dublyo/dockergen/internal/errors"
	"github.com/dublyo/dockergen/internal/stack"
)

// BuildParameters are the inputs to a render
type BuildParameters struct {
	Type       stack.Type
	EntryPoint string
	Port       string
	OutputPath string

	// Multistage is advisory; only families offering both shapes honor it.
	Multistage bool
}

// Generator renders and writes Dockerfiles
type Generator interface {
	Render(params BuildParameters) (*Output, error)
	Generate(params BuildParameters) (*Output, error)
}

// Output is a rendered Dockerfile
type Output struct {
	Dockerfile string
	Path       string
	Family     Family
	Stages     int

	// ExposedPort is the port the image declares, "" when it declares none.
	ExposedPort string
	Written     bool
}

// Option configures the generator
type Option func(*generator)

// generator implements Generator
type generator struct {
	fileMode os.FileMode
	logger   *zap.Logger
}

// New creates a new generator
func New(opts ...Option) Generator {
	g := &generator{
		fileMode: 0o644,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithFileMode sets the permissions of written Dockerfiles
func WithFileMode(mode os.FileMode) Option {
	return func(g *generator) {
		g.fileMode = mode
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(g *generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Render produces the Dockerfile text for params without touching disk
func (g *generator) Render(params BuildParameters) (*Output, error) {
	family := FamilyFor(params.Type)
	tmplContent, ok := body(family, params.Multistage)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrTemplateNotFound, family)
	}

	content, err := executeTemplate(string(family), tmplContent, params)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)

	g.logger.Debug("rendered dockerfile",
		zap.String("type", params.Type.String()),
		zap.String("family", string(family)),
		zap.Bool("multistage", params.Multistage))

	return &Output{
		Dockerfile:  content,
		Path:        params.OutputPath,
		Family:      family,
		Stages:      countStages(content),
		ExposedPort: exposedPort(family, params.Port),
	}, nil
}

// Generate renders params and overwrites params.OutputPath with the result.
// On a write failure the rendered Output is still returned with the error.
func (g *generator) Generate(params BuildParameters) (*Output, error) {
	output, err := g.Render(params)
	if err != nil {
		return nil, err
	}

	if err := g.write(params.OutputPath, output.Dockerfile); err != nil {
		return output, err
	}
	output.Written = true

	g.logger.Debug("wrote dockerfile", zap.String("path", params.OutputPath))
	return output, nil
}

// executeTemplate executes a template with the given parameters
func executeTemplate(name, tmplContent string, params BuildParameters) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTemplateInvalid, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return buf.String(), nil
}

// write replaces path atomically: the content goes to a temp file in the
// same directory which is then renamed over the target.
func (g *generator) write(path, content string) error {
	if path == "" {
		return fmt.Errorf("%w: %w: empty path", errors.ErrWriteFailed, errors.ErrOutputPathInvalid)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %w: %s is a directory", errors.ErrWriteFailed, errors.ErrOutputPathInvalid, path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrWriteFailed, path, err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", errors.ErrWriteFailed, path, err)
	}

	if _, err := tmp.WriteString(content); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(g.fileMode); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", errors.ErrWriteFailed, path, err)
	}

	return nil
}

func exposedPort(f Family, requested string) string {
	switch f {
	case FamilyFrontend, FamilyStatic:
		return WebPort
	case FamilyFallback:
		return ""
	default:
		return requested
	}
}

// countStages counts FROM instructions in rendered text
func countStages(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && strings.EqualFold(fields[0], "FROM") {
			n++
		}
	}
	return n
}
