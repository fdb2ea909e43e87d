// Package stack defines the closed set of project types dockergen can classify.
package stack

// Type is the symbolic classification of a project's technology stack
type Type string

// Node.js ecosystem
const (
	Node    Type = "node"
	Express Type = "express"
	NestJS  Type = "nestjs"
	React   Type = "react"
	NextJS  Type = "nextjs"
	Vue     Type = "vue"
	Svelte  Type = "svelte"
	Angular Type = "angular"
)

// Python ecosystem
const (
	Python       Type = "python"
	PythonPip    Type = "python-pip"
	PythonPoetry Type = "python-poetry"
)

// Other ecosystems
const (
	Golang     Type = "golang"
	Rust       Type = "rust"
	Java       Type = "java"
	Laravel    Type = "laravel"
	Rails      Type = "rails"
	DotNet     Type = "dotnet"
	StaticSite Type = "static-site"
)

// Unknown is returned when no classification rule matches
const Unknown Type = "unknown"

var known = []Type{
	Node, Express, NestJS, React, NextJS, Vue, Svelte, Angular,
	Python, PythonPip, PythonPoetry,
	Golang, Rust, Java, Laravel, Rails, DotNet, StaticSite,
	Unknown,
}

var languages = map[Type]string{
	Node:         "nodejs",
	Express:      "nodejs",
	NestJS:       "nodejs",
	React:        "nodejs",
	NextJS:       "nodejs",
	Vue:          "nodejs",
	Svelte:       "nodejs",
	Angular:      "nodejs",
	Python:       "python",
	PythonPip:    "python",
	PythonPoetry: "python",
	Golang:       "go",
	Rust:         "rust",
	Java:         "java",
	Laravel:      "php",
	Rails:        "ruby",
	DotNet:       "dotnet",
	StaticSite:   "static",
}

// Known returns every built-in project type, in display order.
// The returned slice is a copy.
func Known() []Type {
	out := make([]Type, len(known))
	copy(out, known)
	return out
}

// IsKnown reports whether t is one of the built-in project types
func (t Type) IsKnown() bool {
	for _, k := range known {
		if k == t {
			return true
		}
	}
	return false
}

// Language returns the ecosystem of the type, or "" for unknown and
// extension types
func (t Type) Language() string {
	return languages[t]
}

func (t Type) String() string { return string(t) }

// Parse converts a user-supplied name into a Type. Names outside the
// built-in set are kept verbatim so callers can pass extension types
// (python-pipenv, java-maven, ...); ok reports whether the name is built in.
// An empty name parses to Unknown.
func Parse(name string) (t Type, ok bool) {
	if name == "" {
		return Unknown, true
	}
	t = Type(name)
	return t, t.IsKnown()
}
