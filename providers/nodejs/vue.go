package nodejs

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewVueProvider creates a provider for Vue.js UI framework projects
func NewVueProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "vue",
			ProviderLanguage:    "nodejs",
			ProviderType:        stack.Vue,
			ProviderDescription: "Vue.js UI framework",
			ProviderURL:         "https://vuejs.org",
		},
		providers.Rule{Dependencies: []string{"vue"}},
	)
}
