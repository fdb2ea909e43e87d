package golang

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewStandardProvider detects a Go program with main.go at the root
func NewStandardProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "golang",
			ProviderLanguage:    "go",
			ProviderType:        stack.Golang,
			ProviderDescription: "Go program",
			ProviderURL:         "https://go.dev",
		},
		providers.Rule{IndicatorFiles: []string{"main.go"}},
	)
}
