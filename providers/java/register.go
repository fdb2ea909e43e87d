package java

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers the Java application provider with the registry
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewJavaProvider())
}
