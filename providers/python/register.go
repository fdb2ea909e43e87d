package python

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers all Python providers with the registry
func RegisterAll(registry *detector.Registry) {
	// Dependency files outrank the bare entry script
	registry.Register(NewPipProvider())
	registry.Register(NewPoetryProvider())
	registry.Register(NewPythonProvider())
}
