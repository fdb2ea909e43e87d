package nodejs

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewNextJSProvider creates a provider for Next.js React framework projects
func NewNextJSProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "nextjs",
			ProviderLanguage:    "nodejs",
			ProviderType:        stack.NextJS,
			ProviderDescription: "Next.js React framework",
			ProviderURL:         "https://nextjs.org",
		},
		providers.Rule{Dependencies: []string{"next"}},
	)
}
