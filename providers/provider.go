// Package providers defines the provider interface and rule types for stack detection.
// Copyright (c) 2026 Dublyo. All rights reserved.
// Licensed under the MIT License.
package providers

import (
	"github.com/dublyo/dockergen/internal/scanner"
	"github.com/dublyo/dockergen/internal/stack"
)

// Provider classifies a project as one stack type
type Provider interface {
	// Identity
	Name() string     // e.g., "nextjs"
	Language() string // e.g., "nodejs"
	Type() stack.Type // classification returned on match

	// Detection
	Match(scan *scanner.ScanResult) bool

	// Metadata for display
	Description() string
	URL() string
}

// BaseProvider provides common functionality
type BaseProvider struct {
	ProviderName        string
	ProviderLanguage    string
	ProviderType        stack.Type
	ProviderDescription string
	ProviderURL         string
}

func (p *BaseProvider) Name() string        { return p.ProviderName }
func (p *BaseProvider) Language() string    { return p.ProviderLanguage }
func (p *BaseProvider) Type() stack.Type    { return p.ProviderType }
func (p *BaseProvider) Description() string { return p.ProviderDescription }
func (p *BaseProvider) URL() string         { return p.ProviderURL }

// Rule defines a detection predicate as data.
//
// A rule matches when every populated group is satisfied:
//   - RequiresManifest: a parsed manifest is present
//   - Dependencies: at least ONE key is declared in the manifest
//   - IndicatorFiles / IndicatorSuffixes: at least ONE entry exists
//
// A rule with no groups populated never matches.
type Rule struct {
	RequiresManifest bool

	// Manifest dependency keys
	Dependencies []string

	// Entry names where at least ONE must exist
	IndicatorFiles []string

	// Entry name suffixes (e.g. ".csproj") where at least ONE must exist
	IndicatorSuffixes []string
}

// Matches evaluates the rule against a scan result
func (r Rule) Matches(scan *scanner.ScanResult) bool {
	if scan == nil {
		return false
	}
	if !r.RequiresManifest && len(r.Dependencies) == 0 && len(r.IndicatorFiles) == 0 && len(r.IndicatorSuffixes) == 0 {
		return false
	}

	if r.RequiresManifest || len(r.Dependencies) > 0 {
		if !scan.HasManifest() {
			return false
		}
	}

	if len(r.Dependencies) > 0 && !anyDependency(scan.Manifest, r.Dependencies) {
		return false
	}

	if len(r.IndicatorFiles) > 0 || len(r.IndicatorSuffixes) > 0 {
		if !anyIndicator(scan.Listing, r.IndicatorFiles, r.IndicatorSuffixes) {
			return false
		}
	}

	return true
}

func anyDependency(m *scanner.Manifest, names []string) bool {
	for _, name := range names {
		if m.HasDependency(name) {
			return true
		}
	}
	return false
}

func anyIndicator(l *scanner.Listing, files, suffixes []string) bool {
	for _, f := range files {
		if l.Has(f) {
			return true
		}
	}
	for _, s := range suffixes {
		if l.HasSuffix(s) {
			return true
		}
	}
	return false
}

// RuleProvider is a Provider backed by a declarative Rule
type RuleProvider struct {
	BaseProvider
	Rule Rule
}

// NewRuleProvider creates a provider from its identity and rule
func NewRuleProvider(base BaseProvider, rule Rule) *RuleProvider {
	return &RuleProvider{BaseProvider: base, Rule: rule}
}

// Match implements Provider
func (p *RuleProvider) Match(scan *scanner.ScanResult) bool {
	return p.Rule.Matches(scan)
}
