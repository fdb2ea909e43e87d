package ruby

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers the Ruby on Rails provider with the registry
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewRailsProvider())
}
