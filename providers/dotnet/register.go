package dotnet

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers all .NET providers with the registry
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewDotNetProvider())
}
