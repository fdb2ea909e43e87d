// Package dockerize wires the scanner, detector, entry point resolver and
// generator into the operations every front end calls.
package dockerize

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dublyo/dockergen/internal/detector"
	"github.com/dublyo/dockergen/internal/entrypoint"
	"github.com/dublyo/dockergen/internal/generator"
	"github.com/dublyo/dockergen/internal/scanner"
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers/dotnet"
	"github.com/dublyo/dockergen/providers/golang"
	"github.com/dublyo/dockergen/providers/java"
	"github.com/dublyo/dockergen/providers/nodejs"
	"github.com/dublyo/dockergen/providers/php"
	"github.com/dublyo/dockergen/providers/python"
	"github.com/dublyo/dockergen/providers/ruby"
	"github.com/dublyo/dockergen/providers/rust"
	"github.com/dublyo/dockergen/providers/static"
)

// Defaults applied when Options leave a field empty
const (
	DefaultPort       = "3000"
	DefaultDockerfile = "Dockerfile"
)

// Options are the inputs of GenerateDockerfile
type Options struct {
	Dir        string     // project directory, "." when empty
	Type       stack.Type // detected when empty
	Output     string     // <Dir>/Dockerfile when empty
	Port       string     // DefaultPort when empty
	EntryPoint string     // resolved when empty

	// SingleStage inverts the multistage preference. Only families that
	// offer both shapes honor it.
	SingleStage bool

	// DryRun renders without writing.
	DryRun bool
}

// Result describes one pipeline run
type Result struct {
	Dir         string
	OutputPath  string
	Type        stack.Type
	Detected    bool // Type came from detection rather than an override
	Detection   *detector.DetectionResult
	EntryPoint  string
	Port        string
	Multistage  bool
	Family      generator.Family
	Stages      int
	ExposedPort string
	Dockerfile  string
	Written     bool
}

// Service runs the read → classify → resolve → render → write pipeline
type Service struct {
	scanner   scanner.Scanner
	registry  *detector.Registry
	generator generator.Generator
	logger    *zap.Logger
}

// Option configures the service
type Option func(*Service)

// WithLogger sets the logger shared by every stage
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry replaces the default provider registry
func WithRegistry(registry *detector.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithScanner replaces the default scanner
func WithScanner(sc scanner.Scanner) Option {
	return func(s *Service) {
		s.scanner = sc
	}
}

// New creates a service with the default rule set
func New(opts ...Option) *Service {
	s := &Service{
		scanner: scanner.New(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry()
	}
	s.generator = generator.New(generator.WithLogger(s.logger))
	return s
}

// NewRegistry returns the built-in providers in classification order:
// manifest rules first, then marker files per ecosystem.
func NewRegistry() *detector.Registry {
	registry := detector.NewRegistry()

	nodejs.RegisterAll(registry)
	python.RegisterAll(registry)
	golang.RegisterAll(registry)
	rust.RegisterAll(registry)
	java.RegisterAll(registry)
	php.RegisterAll(registry)
	ruby.RegisterAll(registry)
	dotnet.RegisterAll(registry)
	static.RegisterAll(registry)

	return registry
}

// Registry returns the provider registry in use
func (s *Service) Registry() *detector.Registry {
	return s.registry
}

// Detect scans dir and classifies it
func (s *Service) Detect(ctx context.Context, dir string) (*detector.DetectionResult, *scanner.ScanResult, error) {
	scan, err := s.scan(ctx, dir)
	if err != nil {
		return nil, nil, err
	}

	result, err := detector.New(s.registry, detector.WithLogger(s.logger)).Detect(ctx, scan)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Debug("detected project type",
		zap.String("dir", scan.Path),
		zap.Int("entries", scan.Listing.Len()),
		zap.String("type", result.Type.String()),
		zap.String("provider", result.Provider))
	return result, scan, nil
}

// DetectProjectType returns the classification of dir
func (s *Service) DetectProjectType(ctx context.Context, dir string) (stack.Type, error) {
	result, _, err := s.Detect(ctx, dir)
	if err != nil {
		return "", err
	}
	return result.Type, nil
}

// GetEntryPoint returns the default entry point of dir for t
func (s *Service) GetEntryPoint(ctx context.Context, dir string, t stack.Type) (string, error) {
	listing, err := s.scanner.List(ctx, orDefault(dir, "."))
	if err != nil {
		return "", err
	}
	return entrypoint.Resolve(listing, t), nil
}

// Plan runs the pipeline without writing
func (s *Service) Plan(ctx context.Context, opts Options) (*Result, error) {
	opts.DryRun = true
	return s.GenerateDockerfile(ctx, opts)
}

// GenerateDockerfile runs the full pipeline. When the write fails the
// returned Result still carries the rendered Dockerfile.
func (s *Service) GenerateDockerfile(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{
		Type:       opts.Type,
		EntryPoint: opts.EntryPoint,
		Port:       orDefault(opts.Port, DefaultPort),
		Multistage: !opts.SingleStage,
	}

	var listing *scanner.Listing
	if res.Type == "" {
		detection, scan, err := s.Detect(ctx, opts.Dir)
		if err != nil {
			return nil, err
		}
		res.Type = detection.Type
		res.Detected = true
		res.Detection = detection
		listing = scan.Listing
	} else {
		if !res.Type.IsKnown() {
			s.logger.Warn("project type has no dedicated template, using the generic one",
				zap.String("type", res.Type.String()))
		}
		l, err := s.scanner.List(ctx, orDefault(opts.Dir, "."))
		if err != nil {
			return nil, err
		}
		listing = l
	}
	res.Dir = listing.Root

	if res.EntryPoint == "" {
		res.EntryPoint = entrypoint.Resolve(listing, res.Type)
	}

	res.OutputPath = opts.Output
	if res.OutputPath == "" {
		res.OutputPath = filepath.Join(res.Dir, DefaultDockerfile)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	params := generator.BuildParameters{
		Type:       res.Type,
		EntryPoint: res.EntryPoint,
		Port:       res.Port,
		OutputPath: res.OutputPath,
		Multistage: res.Multistage,
	}

	var output *generator.Output
	var err error
	if opts.DryRun {
		output, err = s.generator.Render(params)
	} else {
		output, err = s.generator.Generate(params)
	}
	if output != nil {
		res.Family = output.Family
		res.Stages = output.Stages
		res.ExposedPort = output.ExposedPort
		res.Dockerfile = output.Dockerfile
		res.Written = output.Written
	}
	if err != nil {
		if output == nil {
			return nil, err
		}
		s.logger.Error("dockerfile write failed", zap.String("path", res.OutputPath), zap.Error(err))
		return res, err
	}

	s.logger.Debug("pipeline complete",
		zap.String("type", res.Type.String()),
		zap.String("entrypoint", res.EntryPoint),
		zap.String("family", string(res.Family)),
		zap.Bool("written", res.Written))
	return res, nil
}

func (s *Service) scan(ctx context.Context, dir string) (*scanner.ScanResult, error) {
	scan, err := s.scanner.Scan(ctx, orDefault(dir, "."))
	if err != nil {
		return nil, err
	}
	if scan.ManifestErr != nil {
		s.logger.Warn("ignoring unusable manifest",
			zap.String("file", scanner.ManifestFile),
			zap.Error(scan.ManifestErr))
	}
	return scan, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
