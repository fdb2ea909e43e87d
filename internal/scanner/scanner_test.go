package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dublyo/dockergen/internal/errors"
	"github.com/dublyo/dockergen/internal/scanner"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestScanListingIsSortedAndTopLevel(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"b.js": "", "a.js": "", ".env": ""})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "nested"), 0o755))
	writeFiles(t, filepath.Join(dir, "src"), map[string]string{"main.go": ""})

	scan, err := scanner.New().Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{".env", "a.js", "b.js", "src"}, scan.Listing.Entries)
	assert.True(t, scan.Listing.IsDir("src"))
	assert.False(t, scan.Listing.Has("main.go"))
	assert.False(t, scan.HasManifest())
	assert.NoError(t, scan.ManifestErr)
}

func TestScanMergesDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"package.json": `{
			"name": "app",
			"dependencies": {"react": "^18", "lodash": "4.0.0"},
			"devDependencies": {"lodash": "4.17.21", "Jest": "29"}
		}`,
	})

	scan, err := scanner.New().Scan(context.Background(), dir)
	require.NoError(t, err)
	require.True(t, scan.HasManifest())

	deps := scan.Manifest.Dependencies
	assert.Equal(t, "^18", deps["react"])
	assert.Equal(t, "4.17.21", deps["lodash"], "development declaration overrides production")
	assert.True(t, scan.Manifest.HasDependency("Jest"))
	assert.False(t, scan.Manifest.HasDependency("jest"), "keys are case-sensitive")
	assert.Equal(t, []string{"Jest", "lodash", "react"}, scan.Manifest.DependencyNames())
}

func TestScanInvalidManifestIsRecorded(t *testing.T) {
	cases := map[string]string{
		"garbage": "{not json",
		"array":   "[]",
		"null":    "null",
		"empty":   "",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, map[string]string{"package.json": content})

			scan, err := scanner.New().Scan(context.Background(), dir)
			require.NoError(t, err)
			assert.False(t, scan.HasManifest())
			assert.ErrorIs(t, scan.ManifestErr, errors.ErrManifestParse)
			assert.True(t, scan.Listing.Has("package.json"))
		})
	}
}

func TestScanToleratesUnexpectedFieldTypes(t *testing.T) {
	cases := []struct {
		name    string
		content string
		deps    map[string]string
	}{
		{
			name:    "numeric version",
			content: `{"version": 1, "dependencies": {"react": "^18"}}`,
			deps:    map[string]string{"react": "^18"},
		},
		{
			name:    "numeric dependency spec",
			content: `{"dependencies": {"react": 18}}`,
			deps:    map[string]string{"react": "18"},
		},
		{
			name:    "array script",
			content: `{"name": ["x"], "main": 3, "scripts": {"x": ["a"]}, "dependencies": {"express": "4"}}`,
			deps:    map[string]string{"express": "4"},
		},
		{
			name:    "dependency section not an object",
			content: `{"dependencies": ["react"], "devDependencies": {"jest": "29"}}`,
			deps:    map[string]string{"jest": "29"},
		},
		{
			name:    "null sections",
			content: `{"dependencies": null}`,
			deps:    map[string]string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, map[string]string{"package.json": tc.content})

			scan, err := scanner.New().Scan(context.Background(), dir)
			require.NoError(t, err)
			require.NoError(t, scan.ManifestErr)
			require.True(t, scan.HasManifest())
			assert.Equal(t, tc.deps, scan.Manifest.Dependencies)
		})
	}
}

func TestScanManifestTooLarge(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"package.json": `{"dependencies":{"react":"18"}}`})

	scan, err := scanner.New(scanner.WithMaxManifestSize(4)).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, scan.HasManifest())
	assert.ErrorIs(t, scan.ManifestErr, errors.ErrManifestParse)
}

func TestScanDirectoryErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFiles(t, dir, map[string]string{"file.txt": "x"})

	_, err := scanner.New().Scan(context.Background(), filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, errors.ErrDirectoryUnreadable)
	assert.ErrorIs(t, err, errors.ErrPathNotFound)

	_, err = scanner.New().Scan(context.Background(), file)
	assert.ErrorIs(t, err, errors.ErrDirectoryUnreadable)
	assert.ErrorIs(t, err, errors.ErrNotADirectory)
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanner.New().Scan(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListingFirstWithSuffix(t *testing.T) {
	l := scanner.NewListing("/app", "server.js", "app.js", "README.md")

	first, ok := l.FirstWithSuffix(".js")
	require.True(t, ok)
	assert.Equal(t, "app.js", first)

	_, ok = l.FirstWithSuffix(".py")
	assert.False(t, ok)
	assert.True(t, l.HasSuffix(".md"))
	assert.Equal(t, 3, l.Len())
}
