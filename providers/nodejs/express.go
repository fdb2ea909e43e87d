package nodejs

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewExpressProvider creates a provider for Express.js web framework projects
func NewExpressProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "express",
			ProviderLanguage:    "nodejs",
			ProviderType:        stack.Express,
			ProviderDescription: "Express.js web framework",
			ProviderURL:         "https://expressjs.com",
		},
		providers.Rule{Dependencies: []string{"express"}},
	)
}
