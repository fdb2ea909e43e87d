package nodejs

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers all Node.js providers with the registry.
// Dependency sets overlap, so registration order is the tie-break:
// UI library, meta-framework, other UI frameworks, then backend frameworks.
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewReactProvider())
	registry.Register(NewNextJSProvider())
	registry.Register(NewVueProvider())
	registry.Register(NewSvelteProvider())
	registry.Register(NewNestJSProvider())
	registry.Register(NewExpressProvider())
	registry.Register(NewNodeProvider()) // Fallback for any package.json
}
