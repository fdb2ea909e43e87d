package nodejs

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewNestJSProvider creates a provider for NestJS server framework projects
func NewNestJSProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "nestjs",
			ProviderLanguage:    "nodejs",
			ProviderType:        stack.NestJS,
			ProviderDescription: "NestJS server framework",
			ProviderURL:         "https://nestjs.com",
		},
		providers.Rule{Dependencies: []string{"@nestjs/core"}},
	)
}
