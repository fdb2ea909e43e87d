package static

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers the Static HTML site provider with the registry
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewStaticProvider())
}
