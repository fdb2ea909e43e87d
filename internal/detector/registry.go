package detector

import (
	"sync"

	"github.com/dublyo/dockergen/internal/stack"
	"github.com/dublyo/dockergen/providers"
)

// Registry holds providers in evaluation order. Earlier registrations win
// when more than one provider matches.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]providers.Provider
	ordered   []providers.Provider // Maintains registration order
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]providers.Provider),
		ordered:   make([]providers.Provider, 0),
	}
}

// Register appends a provider. Re-registering a name replaces the provider
// in place and keeps its original position.
func (r *Registry) Register(p providers.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[p.Name()]; exists {
		for i, existing := range r.ordered {
			if existing.Name() == p.Name() {
				r.ordered[i] = p
				break
			}
		}
	} else {
		r.ordered = append(r.ordered, p)
	}
	r.providers[p.Name()] = p
}

// Get returns a provider by name
func (r *Registry) Get(name string) providers.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// Providers returns all registered providers in evaluation order
func (r *Registry) Providers() []providers.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]providers.Provider, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// Names returns provider names in evaluation order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.ordered))
	for i, p := range r.ordered {
		names[i] = p.Name()
	}
	return names
}

// ByLanguage returns providers for a specific language
func (r *Registry) ByLanguage(language string) []providers.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []providers.Provider
	for _, p := range r.ordered {
		if p.Language() == language {
			result = append(result, p)
		}
	}
	return result
}

// Types returns every type some provider can produce, in evaluation order
func (r *Registry) Types() []stack.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[stack.Type]struct{})
	var types []stack.Type
	for _, p := range r.ordered {
		if _, ok := seen[p.Type()]; !ok {
			seen[p.Type()] = struct{}{}
			types = append(types, p.Type())
		}
	}
	return types
}

// Count returns the number of registered providers
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
