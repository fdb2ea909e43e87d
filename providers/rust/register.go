package rust

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers the Rust binary crate provider with the registry
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewRustProvider())
}
