package dotnet

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewDotNetProvider detects .NET projects by Program.cs or any *.csproj
func NewDotNetProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "dotnet",
			ProviderLanguage:    "dotnet",
			ProviderType:        stack.DotNet,
			ProviderDescription: ".NET application",
			ProviderURL:         "https://dotnet.microsoft.com",
		},
		providers.Rule{
			IndicatorFiles:    []string{"Program.cs"},
			IndicatorSuffixes: []string{".csproj"},
		},
	)
}
