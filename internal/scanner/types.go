// Package scanner reads the top level of a project directory and the
// dependency manifest used for classification.
package scanner

import (
	"sort"
	"strings"
)

// ManifestFile is the dependency-declaration file read during a scan
const ManifestFile = "package.json"

// ScanResult contains everything read from a project directory
type ScanResult struct {
	Path    string
	Listing *Listing

	// Manifest is nil when no manifest exists or when it failed to parse.
	Manifest *Manifest
	// ManifestErr is set when a manifest exists but could not be used.
	ManifestErr error
}

// HasManifest reports whether a usable manifest was read
func (s *ScanResult) HasManifest() bool {
	return s != nil && s.Manifest != nil
}

// Listing is the non-recursive set of entry names at the top of a directory.
// Entries are sorted lexicographically so iteration is reproducible.
type Listing struct {
	Root    string
	Entries []string
	Dirs    []string
	set     map[string]struct{}
}

// NewListing builds a listing from entry names. Names are copied and sorted.
func NewListing(root string, entries ...string) *Listing {
	l := &Listing{
		Root:    root,
		Entries: append([]string(nil), entries...),
	}
	sort.Strings(l.Entries)
	l.buildSet()
	return l
}

// Has checks if an entry with the exact name exists
func (l *Listing) Has(name string) bool {
	if l == nil {
		return false
	}
	if l.set == nil {
		l.buildSet()
	}
	_, ok := l.set[name]
	return ok
}

// HasSuffix reports whether any entry name ends with suffix
func (l *Listing) HasSuffix(suffix string) bool {
	_, ok := l.FirstWithSuffix(suffix)
	return ok
}

// FirstWithSuffix returns the lexicographically first entry ending in suffix
func (l *Listing) FirstWithSuffix(suffix string) (string, bool) {
	if l == nil {
		return "", false
	}
	for _, e := range l.Entries {
		if strings.HasSuffix(e, suffix) {
			return e, true
		}
	}
	return "", false
}

// IsDir reports whether the named entry is a directory
func (l *Listing) IsDir(name string) bool {
	if l == nil {
		return false
	}
	i := sort.SearchStrings(l.Dirs, name)
	return i < len(l.Dirs) && l.Dirs[i] == name
}

// Len returns the number of entries
func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Entries)
}

func (l *Listing) buildSet() {
	l.set = make(map[string]struct{}, len(l.Entries))
	for _, e := range l.Entries {
		l.set[e] = struct{}{}
	}
}

// Manifest is a parsed dependency manifest
type Manifest struct {
	File string

	// Dependencies merges production and development declarations.
	// A key declared in both keeps the development version spec.
	Dependencies map[string]string
}

// HasDependency checks if a dependency key is declared. Keys are case-sensitive.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Dependencies[name]
	return ok
}

// DependencyNames returns the merged dependency keys, sorted
func (m *Manifest) DependencyNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Dependencies))
	for k := range m.Dependencies {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
