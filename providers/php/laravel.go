package php

import (
	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// NewLaravelProvider detects Laravel PHP framework projects by their artisan marker
func NewLaravelProvider() *providers.RuleProvider {
	return providers.NewRuleProvider(
		providers.BaseProvider{
			ProviderName:        "laravel",
			ProviderLanguage:    "php",
			ProviderType:        stack.Laravel,
			ProviderDescription: "Laravel PHP framework",
			ProviderURL:         "https://laravel.com",
		},
		providers.Rule{IndicatorFiles: []string{"artisan"}},
	)
}
