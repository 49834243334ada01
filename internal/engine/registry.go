package engine

import (
	"fmt"
	"sort"

	domsvc "RegimeCast/internal/domain/service"
)

// Registry is the frozen mapping from step names to regime functions. It is
// built once at startup and never mutated afterwards, so it is safe for
// unlimited concurrent readers. An unknown name fails at the point of use,
// per step during execution; blueprints are not pre-validated against it.
type Registry struct {
	funcs map[string]domsvc.RegimeFunction
}

// NewRegistry freezes the given function set.
func NewRegistry(funcs map[string]domsvc.RegimeFunction) *Registry {
	m := make(map[string]domsvc.RegimeFunction, len(funcs))
	for name, fn := range funcs {
		m[name] = fn
	}
	return &Registry{funcs: m}
}

// Lookup resolves a step's function name.
func (r *Registry) Lookup(name string) (domsvc.RegimeFunction, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: function %q not found in registry", ErrConfiguration, name)
	}
	return fn, nil
}

// Names returns the registered function names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
