package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/dublyo/dockergen/internal/errors"
)

// Scanner scans project directories
type Scanner interface {
	Scan(ctx context.Context, path string) (*ScanResult, error)
	List(ctx context.Context, path string) (*Listing, error)
}

// Option configures the scanner
type Option func(*scanner)

// scanner implements Scanner
type scanner struct {
	maxManifestSize int64
}

// New creates a new scanner
func New(opts ...Option) Scanner {
	s := &scanner{
		maxManifestSize: 1024 * 1024, // 1MB
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxManifestSize sets the largest manifest that will be parsed
func WithMaxManifestSize(size int64) Option {
	return func(s *scanner) {
		s.maxManifestSize = size
	}
}

// Scan reads the listing and, when present, the manifest of path.
// Only directory failures are returned; manifest failures are recorded
// on the result.
func (s *scanner) Scan(ctx context.Context, path string) (*ScanResult, error) {
	listing, err := s.List(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		Path:    listing.Root,
		Listing: listing,
	}

	if listing.Has(ManifestFile) && !listing.IsDir(ManifestFile) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		result.Manifest, result.ManifestErr = s.readManifest(filepath.Join(listing.Root, ManifestFile))
	}

	return result, nil
}

// List reads the top-level entries of path
func (s *scanner) List(ctx context.Context, path string) (*Listing, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w: %s", errors.ErrDirectoryUnreadable, errors.ErrPathNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w: %s: %v", errors.ErrDirectoryUnreadable, errors.ErrAccessDenied, path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %w: %s", errors.ErrDirectoryUnreadable, errors.ErrNotADirectory, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrDirectoryUnreadable, path, err)
	}

	entries, err := os.ReadDir(absPath)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %w: %s", errors.ErrDirectoryUnreadable, errors.ErrAccessDenied, absPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrDirectoryUnreadable, absPath, err)
	}

	return listingFromEntries(absPath, entries), nil
}

func listingFromEntries(root string, entries []fs.DirEntry) *Listing {
	names := make([]string, 0, len(entries))
	var dirs []string
	for _, e := range entries {
		names = append(names, e.Name())
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	l := NewListing(root, names...)
	sort.Strings(dirs)
	l.Dirs = dirs
	return l
}

func (s *scanner) readManifest(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrManifestParse, path, err)
	}
	if s.maxManifestSize > 0 && info.Size() > s.maxManifestSize {
		return nil, fmt.Errorf("%w: %s: larger than %d bytes", errors.ErrManifestParse, path, s.maxManifestSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrManifestParse, path, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.File = path
	return m, nil
}

// ParseManifest parses package.json content. The document must be a JSON
// object; anything else is an ErrManifestParse. Only the dependency maps are
// read, and fields of an unexpected type are ignored rather than rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrManifestParse, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", errors.ErrManifestParse)
	}

	deps := make(map[string]string)
	// devDependencies are merged last and win on duplicate keys
	for _, field := range []string{"dependencies", "devDependencies"} {
		for name, raw := range dependencyMap(doc[field]) {
			deps[name] = versionSpec(raw)
		}
	}

	return &Manifest{
		File:         ManifestFile,
		Dependencies: deps,
	}, nil
}

// dependencyMap decodes a dependency section. A section that is not an
// object contributes no keys.
func dependencyMap(raw json.RawMessage) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// versionSpec returns a string spec unquoted and any other value as its
// JSON text
func versionSpec(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}
