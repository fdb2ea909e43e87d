package java

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewJavaProvider detects Java application projects by their Main.java marker
func NewJavaProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "java",
			ProviderLanguage:    "java",
			ProviderType:        stack.Java,
			ProviderDescription: "Java application",
			ProviderURL:         "https://dev.java",
		},
		providers.Rule{IndicatorFiles: []string{"Main.java"}},
	)
}
