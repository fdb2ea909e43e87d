package static

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewStaticProvider detects Static HTML site projects by their index.html marker
func NewStaticProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "static-site",
			ProviderLanguage:    "static",
			ProviderType:        stack.StaticSite,
			ProviderDescription: "Static HTML site",
			ProviderURL:         "https://nginx.org",
		},
		providers.Rule{IndicatorFiles: []string{"index.html"}},
	)
}
