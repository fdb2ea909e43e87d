package php

import (
	"github.com/dublyo/dockergen/internal/detector"
)

// RegisterAll registers the Laravel PHP framework provider with the registry
func RegisterAll(registry *detector.Registry) {
	registry.Register(NewLaravelProvider())
}
