// Package detector classifies a scanned project into a stack type.
package detector

import "github.com/dublyo/dockergen/internal/stack"

// DetectionResult contains the detection outcome
type DetectionResult struct {
	Detected    bool       // false when Type is stack.Unknown
	Type        stack.Type // winning classification
	Language    string     // nodejs, python, go, etc.
	Provider    string     // Provider that matched first
	Description string

	// ManifestPresent is true when a manifest was parsed and used.
	ManifestPresent bool
	// ManifestErr is the absorbed manifest failure, if any.
	ManifestErr error

	// All matching providers in evaluation order (for debugging)
	Candidates []Candidate
}

// Candidate is a provider whose rule matched
type Candidate struct {
	Provider string
	Type     stack.Type
}

// BestCandidate returns the winning candidate, if any
func (r *DetectionResult) BestCandidate() *Candidate {
	if len(r.Candidates) == 0 {
		return nil
	}
	return &r.Candidates[0]
}

// TopCandidates returns the first n candidates
func (r *DetectionResult) TopCandidates(n int) []Candidate {
	if len(r.Candidates) <= n {
		return r.Candidates
	}
	return r.Candidates[:n]
}
