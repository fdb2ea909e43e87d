package entrypoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dublyo/dockergen/internal/entrypoint"
	"github.com/dublyo/dockergen/internal/scanner"
	"github.com/dublyo/dockergen/internal/stack"
)

func TestResolveDefaults(t *testing.T) {
	listing := scanner.NewListing("/app", "app.js")

	cases := map[stack.Type]string{
		stack.Node:         "index.js",
		stack.Express:      "server.js",
		stack.React:        "npm run build",
		stack.NextJS:       "npm run build && npm start",
		stack.PythonPip:    "main.py",
		stack.PythonPoetry: "main.py",
		stack.Golang:       "main.go",
		stack.Java:         "Main.java",
		stack.Laravel:      "php artisan serve",
		stack.StaticSite:   "index.html",
	}

	for typ, want := range cases {
		assert.Equal(t, want, entrypoint.Resolve(listing, typ), typ)
	}
}

func TestEveryKnownTypeButUnknownHasDefault(t *testing.T) {
	for _, typ := range stack.Known() {
		_, ok := entrypoint.Default(typ)
		if typ == stack.Unknown {
			assert.False(t, ok)
			continue
		}
		assert.True(t, ok, typ)
	}
}

func TestResolveScansListing(t *testing.T) {
	cases := []struct {
		name    string
		entries []string
		typ     stack.Type
		want    string
	}{
		{name: "first js lexicographically", entries: []string{"worker.js", "app.js", "README.md"}, typ: stack.Unknown, want: "app.js"},
		{name: "fallback when no js", entries: []string{"README.md"}, typ: stack.Unknown, want: entrypoint.Fallback},
		{name: "empty listing", entries: nil, typ: stack.Unknown, want: entrypoint.Fallback},
		{name: "extension type", entries: []string{"server.js"}, typ: stack.Type("python-pipenv"), want: "server.js"},
		{name: "suffix must be at end", entries: []string{"app.json"}, typ: stack.Unknown, want: entrypoint.Fallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			listing := scanner.NewListing("/app", tc.entries...)
			assert.Equal(t, tc.want, entrypoint.Resolve(listing, tc.typ))
		})
	}
}

func TestResolveNilListing(t *testing.T) {
	assert.Equal(t, entrypoint.Fallback, entrypoint.Resolve(nil, stack.Unknown))
}

func TestResolveIsDeterministic(t *testing.T) {
	listing := scanner.NewListing("/app", "z.js", "m.js", "a.js")
	first := entrypoint.Resolve(listing, stack.Unknown)
	assert.Equal(t, first, entrypoint.Resolve(listing, stack.Unknown))
	assert.Equal(t, "a.js", first)
}
