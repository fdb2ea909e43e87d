// Package entrypoint resolves the default command or file that starts a
// project inside its container.
package entrypoint

import (
	"github.com/dublyo/dockergen/internal/scanner"
	"github.com/dublyo/dockergen/internal/stack"
)

// Fallback is returned when a type has no default and the listing holds
// no script with ScanSuffix.
const Fallback = "index.js"

// ScanSuffix is the source suffix searched for types without a default
const ScanSuffix = ".js"

var defaults = map[stack.Type]string{
	stack.Node:         "index.js",
	stack.Express:      "server.js",
	stack.React:        "npm run build",
	stack.NextJS:       "npm run build && npm start",
	stack.Vue:          "npm run serve",
	stack.Svelte:       "npm run build",
	stack.Angular:      "npm run start",
	stack.NestJS:       "npm run start",
	stack.Python:       "main.py",
	stack.PythonPip:    "main.py",
	stack.PythonPoetry: "main.py",
	stack.Golang:       "main.go",
	stack.Rust:         "main.rs",
	stack.Java:         "Main.java",
	stack.Laravel:      "php artisan serve",
	stack.Rails:        "rails s",
	stack.DotNet:       "dotnet run",
	stack.StaticSite:   "index.html",
}

// Default returns the fixed entry point for t, if it has one
func Default(t stack.Type) (string, bool) {
	ep, ok := defaults[t]
	return ep, ok
}

// Resolve returns the entry point for t. Types without a default take the
// lexicographically first listing entry ending in ScanSuffix, then Fallback.
func Resolve(listing *scanner.Listing, t stack.Type) string {
	if ep, ok := defaults[t]; ok {
		return ep
	}
	if first, ok := listing.FirstWithSuffix(ScanSuffix); ok {
		return first
	}
	return Fallback
}
