package rust

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewRustProvider detects Rust binary crate projects by their main.rs marker
func NewRustProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "rust",
			ProviderLanguage:    "rust",
			ProviderType:        stack.Rust,
			ProviderDescription: "Rust binary crate",
			ProviderURL:         "https://www.rust-lang.org",
		},
		providers.Rule{IndicatorFiles: []string{"main.rs"}},
	)
}
