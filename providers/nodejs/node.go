package nodejs

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewNodeProvider creates the catch-all provider for any project with a
// usable package.json and no recognised framework
func NewNodeProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "node",
			ProviderLanguage:    "nodejs",
			ProviderType:        stack.Node,
			ProviderDescription: "Node.js runtime",
			ProviderURL:         "https://nodejs.org",
		},
		providers.Rule{RequiresManifest: true},
	)
}
