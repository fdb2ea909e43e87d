package detector

import (
	"context"

	"go.uber.org/zap"

	"github.com/dublyo/dockergen/internal/scanner"
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// Detector detects the stack of a project
type Detector interface {
	Detect(ctx context.Context, scan *scanner.ScanResult) (*DetectionResult, error)
}

// Option configures the detector
type Option func(*detector)

// detector implements Detector
type detector struct {
	registry *Registry
	logger   *zap.Logger
}

// New creates a new detector
func New(registry *Registry, opts ...Option) Detector {
	d := &detector{
		registry: registry,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithLogger sets the logger used for candidate tracing
func WithLogger(logger *zap.Logger) Option {
	return func(d *detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Detect evaluates every provider in registration order. The first match
// decides the type; later matches are kept as candidates.
func (d *detector) Detect(ctx context.Context, scan *scanner.ScanResult) (*DetectionResult, error) {
	var candidates []Candidate

	for _, p := range d.registry.Providers() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if p.Match(scan) {
			d.logger.Debug("provider matched",
				zap.String("provider", p.Name()),
				zap.String("type", p.Type().String()))
			candidates = append(candidates, Candidate{
				Provider: p.Name(),
				Type:     p.Type(),
			})
		}
	}

	result := &DetectionResult{
		Type:            stack.Unknown,
		ManifestPresent: scan.HasManifest(),
		Candidates:      candidates,
	}
	if scan != nil {
		result.ManifestErr = scan.ManifestErr
	}

	if len(candidates) == 0 {
		return result, nil
	}

	provider := d.registry.Get(candidates[0].Provider)
	result.Detected = true
	result.Type = provider.Type()
	result.Language = provider.Language()
	result.Provider = provider.Name()
	result.Description = provider.Description()
	return result, nil
}

// Classify returns the type of the first provider matching scan, or
// stack.Unknown. It is total and has no side effects.
func Classify(ordered []providers.Provider, scan *scanner.ScanResult) stack.Type {
	for _, p := range ordered {
		if p.Match(scan) {
			return p.Type()
		}
	}
	return stack.Unknown
}

// Classify classifies a listing and optional manifest with the registry's
// providers. A nil manifest means no usable manifest.
func (r *Registry) Classify(listing *scanner.Listing, manifest *scanner.Manifest) stack.Type {
	return Classify(r.Providers(), &scanner.ScanResult{
		Listing:  listing,
		Manifest: manifest,
	})
}
