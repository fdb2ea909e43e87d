package nodejs

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewReactProvider creates a provider for React UI library projects
func NewReactProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "react",
			ProviderLanguage:    "nodejs",
			ProviderType:        stack.React,
			ProviderDescription: "React UI library",
			ProviderURL:         "https://react.dev",
		},
		providers.Rule{Dependencies: []string{"react"}},
	)
}
