package nodejs

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewSvelteProvider creates a provider for Svelte UI framework projects
func NewSvelteProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "svelte",
			ProviderLanguage:    "nodejs",
			ProviderType:        stack.Svelte,
			ProviderDescription: "Svelte UI framework",
			ProviderURL:         "https://svelte.dev",
		},
		providers.Rule{Dependencies: []string{"svelte"}},
	)
}
