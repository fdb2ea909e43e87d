package golang

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers all Go providers with the registry
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewStandardProvider())
}
