package ruby

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewRailsProvider detects Ruby on Rails projects by their Gemfile marker
func NewRailsProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "rails",
			ProviderLanguage:    "ruby",
			ProviderType:        stack.Rails,
			ProviderDescription: "Ruby on Rails",
			ProviderURL:         "https://rubyonrails.org",
		},
		providers.Rule{IndicatorFiles: []string{"Gemfile"}},
	)
}
