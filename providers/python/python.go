package python

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewPipProvider detects projects declaring dependencies in requirements.txt
func NewPipProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "python-pip",
			ProviderLanguage:    "python",
			ProviderType:        stack.PythonPip,
			ProviderDescription: "Python with pip requirements",
			ProviderURL:         "https://pip.pypa.io",
		},
		providers.Rule{IndicatorFiles: []string{"requirements.txt"}},
	)
}

// NewPoetryProvider detects pyproject.toml based projects
func NewPoetryProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "python-poetry",
			ProviderLanguage:    "python",
			ProviderType:        stack.PythonPoetry,
			ProviderDescription: "Python with pyproject.toml",
			ProviderURL:         "https://python-poetry.org",
		},
		providers.Rule{IndicatorFiles: []string{"pyproject.toml"}},
	)
}

// NewPythonProvider detects a bare main.py script
func NewPythonProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "python",
			ProviderLanguage:    "python",
			ProviderType:        stack.Python,
			ProviderDescription: "Python script",
			ProviderURL:         "https://www.python.org",
		},
		providers.Rule{IndicatorFiles: []string{"main.py"}},
	)
}
